package controller

import (
	"errors"

	"quizboard_backend/internal/model"
	"quizboard_backend/internal/service"
	"quizboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TemplateController 处理画布模板相关的API请求
type TemplateController struct {
	TemplateService *service.TemplateService
}

func NewTemplateController(templateService *service.TemplateService) *TemplateController {
	return &TemplateController{TemplateService: templateService}
}

// SetTemplateRequest 定义模板设置请求模型
// swagger:model SetTemplateRequest
type SetTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ApplyTemplateRequest 定义模板应用请求模型
// swagger:model ApplyTemplateRequest
type ApplyTemplateRequest struct {
	Name     string          `json:"name"`
	Elements []model.Element `json:"elements" binding:"required"`
}

// GetTemplate godoc
// @Summary 获取当前模板
// @Description 获取当前生效的配色模板及全部可用模板名称
// @Tags 模板管理
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/quiz/template [get]
func (c *TemplateController) GetTemplate(ctx *gin.Context) {
	name, styles := c.TemplateService.Current()
	util.Success(ctx, gin.H{
		"current":   name,
		"styles":    styles,
		"available": c.TemplateService.Names(),
	})
}

// SetTemplate godoc
// @Summary 设置模板
// @Description 切换当前配色模板并持久化偏好
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetTemplateRequest true "模板设置请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "未知模板"
// @Router /api/quiz/template [put]
func (c *TemplateController) SetTemplate(ctx *gin.Context) {
	var request SetTemplateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TemplateService.Set(ctx.Request.Context(), request.Name); err != nil {
		if errors.Is(err, util.ErrUnknownTemplate) {
			util.BadRequest(ctx, "Unknown template: "+request.Name)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"current": request.Name})
}

// ApplyTemplate godoc
// @Summary 应用模板
// @Description 对一组画布元素重新着色, 不改变元素的几何属性
// @Tags 模板管理
// @Accept json
// @Produce json
// @Param request body ApplyTemplateRequest true "模板应用请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/quiz/template/apply [post]
func (c *TemplateController) ApplyTemplate(ctx *gin.Context) {
	var request ApplyTemplateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	elements, applied := c.TemplateService.Apply(request.Elements, request.Name)
	util.Success(ctx, gin.H{
		"template": applied,
		"elements": elements,
	})
}
