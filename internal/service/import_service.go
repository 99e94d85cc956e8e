package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizboard_backend/internal/engine"
	"quizboard_backend/internal/model"
	"quizboard_backend/internal/repository"
	"quizboard_backend/internal/util"
	"quizboard_backend/pkg/logger"
	"quizboard_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Viewport describes the canvas view the import will scroll; zero values
// mean "center on the first slide at zoom 1".
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Zoom   float64 `json:"zoom"`
}

// ImportService runs the ingestion pipeline: fetch, resolve, segment,
// render, lay out, compose. One import produces one atomic SceneUpdate;
// partial question sets are never surfaced. Concurrent imports are not
// deduplicated — both will append to the canvas.
type ImportService struct {
	examAPI   *ExamAPIService
	composer  *engine.SlideComposer
	templates *TemplateService
	storage   *StorageService
	repo      *repository.ImportRepository
	inlineSVG bool
}

func NewImportService(
	examAPI *ExamAPIService,
	composer *engine.SlideComposer,
	templates *TemplateService,
	storage *StorageService,
	repo *repository.ImportRepository,
	inlineSVG bool,
) *ImportService {
	return &ImportService{
		examAPI:   examAPI,
		composer:  composer,
		templates: templates,
		storage:   storage,
		repo:      repo,
		inlineSVG: inlineSVG,
	}
}

func (s *ImportService) record(userID uint, examID string, questions, elements int, started time.Time, status, errMsg string) {
	if s.repo == nil {
		return
	}
	rec := &model.ImportRecord{
		UserID:        userID,
		ExamID:        examID,
		QuestionCount: questions,
		ElementCount:  elements,
		DurationMs:    time.Since(started).Milliseconds(),
		Status:        status,
		Error:         errMsg,
	}
	if err := s.repo.Create(rec); err != nil {
		logger.Log.Warn("failed to persist import record", zap.Error(err))
	}
}

// ImportExam fetches the exam's questions and lays them out as slides
// under the current template. Returns util.ErrNoQuestions for an empty
// payload (recoverable, user visible) and a wrapped transport error for
// fetch failures; no elements are produced in either case.
func (s *ImportService) ImportExam(ctx context.Context, userID uint, examID string, vp Viewport) (*model.SceneUpdate, error) {
	started := time.Now()

	questions, err := s.examAPI.FetchQuestions(ctx, examID)
	if err != nil {
		monitoring.ImportCounter.WithLabelValues(model.ImportStatusFailed).Inc()
		s.record(userID, examID, 0, 0, started, model.ImportStatusFailed, err.Error())
		return nil, fmt.Errorf("%w: %v", util.ErrExamFetchFailed, err)
	}

	if len(questions) == 0 {
		monitoring.ImportCounter.WithLabelValues(model.ImportStatusEmpty).Inc()
		s.record(userID, examID, 0, 0, started, model.ImportStatusEmpty, "")
		return nil, util.ErrNoQuestions
	}

	_, tpl := s.templates.Current()
	composed := s.composer.Compose(questions, tpl)

	if !s.inlineSVG && s.storage != nil {
		s.offloadFiles(ctx, composed.Files)
	}

	scroll := firstSlideScroll(composed.Anchors, vp)
	scene := &model.SceneUpdate{
		Elements: composed.Elements,
		Files:    composed.Files,
		ScrollX:  scroll.X,
		ScrollY:  scroll.Y,
	}

	monitoring.ImportCounter.WithLabelValues(model.ImportStatusOK).Inc()
	monitoring.ImportDuration.Observe(time.Since(started).Seconds())
	s.record(userID, examID, len(questions), len(scene.Elements), started, model.ImportStatusOK, "")

	logger.Log.Info("exam imported",
		zap.String("examId", examID),
		zap.Int("questions", len(questions)),
		zap.Int("elements", len(scene.Elements)),
		zap.Duration("took", time.Since(started)),
	)

	return scene, nil
}

// History lists past import attempts, newest first.
func (s *ImportService) History(page, limit int) ([]model.ImportRecord, int64, error) {
	if s.repo == nil {
		return nil, 0, nil
	}
	return s.repo.List(page, limit)
}

// ImportDetail returns one audit record by id.
func (s *ImportService) ImportDetail(id uint) (*model.ImportRecord, error) {
	if s.repo == nil {
		return nil, util.ErrImportNotFound
	}
	record, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrImportNotFound
		}
		return nil, err
	}
	return record, nil
}

type scrollPosition struct {
	X, Y float64
}

func firstSlideScroll(anchors []engine.SlideAnchor, vp Viewport) scrollPosition {
	if len(anchors) == 0 {
		return scrollPosition{}
	}
	zoom := vp.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	first := anchors[0]
	return scrollPosition{
		X: vp.Width/2 - first.CenterX*zoom,
		Y: vp.Height/2 - first.CenterY*zoom,
	}
}

const dataURLPrefix = "data:image/svg+xml;base64,"

// offloadFiles uploads rendered notation SVGs to the storage backend and
// rewrites each file entry to point at the uploaded object. Failures keep
// the inline data URL; offload is an optimization, not a correctness
// requirement.
func (s *ImportService) offloadFiles(ctx context.Context, files map[string]model.FileEntry) {
	for id, entry := range files {
		if !strings.HasPrefix(entry.DataURL, dataURLPrefix) {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(entry.DataURL, dataURLPrefix))
		if err != nil {
			continue
		}

		filename := fmt.Sprintf("notation/%s/%s.svg", time.Now().Format(util.DateFormat), id)
		url, err := s.storage.Provider.Upload(ctx, filename, bytes.NewReader(raw), int64(len(raw)), util.MimeSVG)
		if err != nil {
			logger.Log.Warn("failed to offload notation svg", zap.String("fileId", id), zap.Error(err))
			continue
		}

		entry.DataURL = url
		files[id] = entry
	}
}
