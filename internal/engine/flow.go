package engine

import (
	"time"

	"github.com/google/uuid"

	"quizboard_backend/internal/model"
)

const (
	inlineSegmentGap = 8.0
	inlineLineGap    = 6.0
)

const svgMimeType = "image/svg+xml"

// FlowLayout places one content block's segments as wrapped inline
// content. It owns no cross-call state; the cursor lives on the stack of a
// single Layout call, which is why segments of one block must be laid out
// sequentially and in reading order.
type FlowLayout struct {
	measurer *Measurer
	renderer *NotationRenderer
}

func NewFlowLayout(measurer *Measurer, renderer *NotationRenderer) *FlowLayout {
	return &FlowLayout{measurer: measurer, renderer: renderer}
}

type FlowRequest struct {
	RawText    string
	X, Y       float64
	MaxWidth   float64
	FontSize   float64
	GroupID    string
	CustomData *model.CustomData
	Opacity    float64 // zero means fully opaque
	Files      map[string]model.FileEntry
}

type FlowResult struct {
	Elements []model.Element
	Height   float64
}

// flowCursor is the mutable placement position for one Layout call.
type flowCursor struct {
	x, y       float64
	lineHeight float64
}

func (r *FlowRequest) opacity() float64 {
	if r.Opacity == 0 {
		return 100
	}
	return r.Opacity
}

// Layout flows the block's segments left to right from the anchor,
// wrapping at MaxWidth. Pure single-text blocks bypass the cursor and are
// wrapped as one piece; pure-notation blocks become a single image at the
// anchor. The returned height is always at least the font size.
func (f *FlowLayout) Layout(req FlowRequest) FlowResult {
	segments := SplitNotationSegments(req.RawText)

	if len(segments) > 1 {
		return f.layoutMixed(req, segments)
	}

	if ContainsNotation(req.RawText) {
		if rendered := f.renderer.RenderToImage(req.RawText); rendered != nil {
			width, height := scaleToFit(rendered.Width, rendered.Height, req.MaxWidth)
			img := f.newImageElement(req, rendered, req.X, req.Y, width, height)
			return FlowResult{Elements: []model.Element{img}, Height: height}
		}
	}

	sanitized := SanitizeText(req.RawText)
	wrapped := f.measurer.Wrap(sanitized, req.FontSize, req.MaxWidth)
	w, h := f.measurer.MultilineSize(wrapped, req.FontSize)
	el := f.newTextElement(req, wrapped, req.X, req.Y, w, h)
	return FlowResult{Elements: []model.Element{el}, Height: h}
}

func (f *FlowLayout) layoutMixed(req FlowRequest, segments []Segment) FlowResult {
	var elements []model.Element
	cursor := flowCursor{x: req.X, y: req.Y}

	for _, segment := range segments {
		if segment.Kind == SegmentText {
			sanitized := SanitizeText(segment.Value)
			if sanitized == "" {
				continue
			}

			w, h := f.measurer.TextSize(sanitized, req.FontSize)

			// Wrap only when the cursor already advanced on this line;
			// a segment at the line start is placed as-is even if wide.
			if cursor.x > req.X && cursor.x+w > req.X+req.MaxWidth {
				cursor.x = req.X
				cursor.y += cursor.lineHeight + inlineLineGap
				cursor.lineHeight = 0

				wrapped := f.measurer.Wrap(sanitized, req.FontSize, req.MaxWidth)
				ww, wh := f.measurer.MultilineSize(wrapped, req.FontSize)
				el := f.newTextElement(req, wrapped, cursor.x, cursor.y, ww, wh)
				elements = append(elements, el)
				cursor.x = req.X + ww + inlineSegmentGap
				if wh > cursor.lineHeight {
					cursor.lineHeight = wh
				}
				continue
			}

			el := f.newTextElement(req, sanitized, cursor.x, cursor.y, w, h)
			elements = append(elements, el)
			cursor.x += w + inlineSegmentGap
			if h > cursor.lineHeight {
				cursor.lineHeight = h
			}
			continue
		}

		rendered := f.renderer.RenderToImage(segment.Value)
		if rendered == nil {
			continue
		}

		width, height := scaleToFit(rendered.Width, rendered.Height, req.MaxWidth)

		if cursor.x > req.X && cursor.x+width > req.X+req.MaxWidth {
			cursor.x = req.X
			cursor.y += cursor.lineHeight + inlineLineGap
			cursor.lineHeight = 0
		}

		img := f.newImageElement(req, rendered, cursor.x, cursor.y, width, height)
		elements = append(elements, img)
		cursor.x += width + inlineSegmentGap
		if height > cursor.lineHeight {
			cursor.lineHeight = height
		}
	}

	height := cursor.lineHeight
	if height < req.FontSize {
		height = req.FontSize
	}
	total := cursor.y + height - req.Y
	if total <= 0 {
		total = height
	}
	return FlowResult{Elements: elements, Height: total}
}

func scaleToFit(width, height, maxWidth float64) (float64, float64) {
	scale := 1.0
	if width > maxWidth {
		scale = maxWidth / width
	}
	w := width * scale
	h := height * scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (f *FlowLayout) newTextElement(req FlowRequest, text string, x, y, w, h float64) model.Element {
	return model.Element{
		ID:            uuid.New().String(),
		Type:          model.ElementText,
		X:             x,
		Y:             y,
		Width:         w,
		Height:        h,
		Text:          text,
		FontSize:      req.FontSize,
		FontFamily:    model.FontVirgil,
		TextAlign:     "left",
		VerticalAlign: "top",
		Opacity:       req.opacity(),
		GroupIDs:      []string{req.GroupID},
		CustomData:    req.CustomData,
	}
}

func (f *FlowLayout) newImageElement(req FlowRequest, rendered *RenderedNotation, x, y, w, h float64) model.Element {
	fileID := uuid.New().String()
	req.Files[fileID] = model.FileEntry{
		ID:       fileID,
		DataURL:  rendered.DataURL,
		MimeType: svgMimeType,
		Created:  time.Now().UnixMilli(),
	}

	return model.Element{
		ID:         uuid.New().String(),
		Type:       model.ElementImage,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		FileID:     fileID,
		Status:     "saved",
		Opacity:    req.opacity(),
		GroupIDs:   []string{req.GroupID},
		CustomData: req.CustomData,
	}
}
