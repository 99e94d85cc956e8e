package controller

import (
	"errors"
	"net/http"
	"strconv"

	"quizboard_backend/internal/engine"
	"quizboard_backend/internal/service"
	"quizboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController 处理试题导入与画布尺寸同步相关的API请求
type QuizController struct {
	ImportService *service.ImportService
	SizeTracker   *engine.SizeTracker
}

func NewQuizController(importService *service.ImportService, sizeTracker *engine.SizeTracker) *QuizController {
	return &QuizController{ImportService: importService, SizeTracker: sizeTracker}
}

// ImportExamRequest 定义试题导入请求模型
// swagger:model ImportExamRequest
type ImportExamRequest struct {
	ExamID   string           `json:"examId" binding:"required"`
	Viewport service.Viewport `json:"viewport"`
}

// ImportExam godoc
// @Summary 导入试卷
// @Description 从题库拉取指定试卷的题目并生成画布幻灯片元素
// @Tags 试题导入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportExamRequest true "导入请求"
// @Success 200 {object} util.Response{data=model.SceneUpdate} "成功"
// @Failure 400 {object} util.Response "请求参数错误或试卷为空"
// @Failure 502 {object} util.Response "题库服务不可用"
// @Router /api/quiz/import [post]
func (c *QuizController) ImportExam(ctx *gin.Context) {
	var request ImportExamRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	scene, err := c.ImportService.ImportExam(ctx.Request.Context(), userID, request.ExamID, request.Viewport)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoQuestions):
			util.BadRequest(ctx, "No questions found in this exam")
		case errors.Is(err, util.ErrExamFetchFailed):
			util.Error(ctx, http.StatusBadGateway, "Failed to fetch exam questions")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, scene)
}

// ListImports godoc
// @Summary 获取导入历史
// @Description 分页获取历史导入记录
// @Tags 试题导入
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/quiz/imports [get]
func (c *QuizController) ListImports(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	records, total, err := c.ImportService.History(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  records,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetImport godoc
// @Summary 获取单条导入记录
// @Description 按ID获取一次导入尝试的审计信息
// @Tags 试题导入
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response{data=model.ImportRecord} "成功"
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/quiz/imports/{id} [get]
func (c *QuizController) GetImport(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid import id")
		return
	}

	record, err := c.ImportService.ImportDetail(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrImportNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, record)
}

// Resize godoc
// @Summary 同步卡片尺寸
// @Description 接收解析卡片上报的内容尺寸并更新对应画布元素
// @Tags 试题导入
// @Accept json
// @Produce json
// @Param request body engine.ResizeMessage true "尺寸消息"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "消息格式错误"
// @Router /api/quiz/resize [post]
func (c *QuizController) Resize(ctx *gin.Context) {
	var msg engine.ResizeMessage
	if err := ctx.ShouldBindJSON(&msg); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	changed := c.SizeTracker.Apply(msg)
	width, height, _ := c.SizeTracker.Size(msg.ID)

	util.Success(ctx, gin.H{
		"changed": changed,
		"width":   width,
		"height":  height,
	})
}
