package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/dmgcalc/internal/damage"
	"github.com/udisondev/dmgcalc/internal/data"
	"github.com/udisondev/dmgcalc/internal/model"
)

func (h *Handler) calculate(c *gin.Context) {
	var req damage.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.svc.Calculate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) batch(c *gin.Context) {
	var reqs []damage.Request
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.svc.CalculateBatch(c.Request.Context(), reqs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) natures(c *gin.Context) {
	c.JSON(http.StatusOK, data.Natures())
}

func (h *Handler) species(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dex().SpeciesList())
}

func (h *Handler) moves(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dex().MoveList())
}

type typeView struct {
	Name   string `json:"name"`
	ZhName string `json:"zhName"`
}

func (h *Handler) types(c *gin.Context) {
	all := model.AllTypes()
	out := make([]typeView, 0, len(all))
	for _, t := range all {
		out = append(out, typeView{Name: t.String(), ZhName: t.ZhName()})
	}
	c.JSON(http.StatusOK, out)
}

type effectivenessResponse struct {
	Attack     model.Type     `json:"attack"`
	Defend     []model.Type   `json:"defend"`
	Multiplier model.Modifier `json:"multiplier"`
}

// effectiveness serves /api/effectiveness?attack=Fire&defend=Grass,Steel.
func (h *Handler) effectiveness(c *gin.Context) {
	atkName := c.Query("attack")
	if atkName == "" {
		writeError(c, &model.ValidationError{Field: "attack", Value: "", Reason: "is required"})
		return
	}
	atk, err := model.ParseType(atkName)
	if err != nil {
		writeError(c, err)
		return
	}

	var defend []model.Type
	for _, name := range strings.Split(c.Query("defend"), ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		t, err := model.ParseType(name)
		if err != nil {
			writeError(c, err)
			return
		}
		defend = append(defend, t)
	}

	mult, err := data.Effectiveness(atk, defend...)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, effectivenessResponse{Attack: atk, Defend: defend, Multiplier: mult})
}

func (h *Handler) createTemplate(c *gin.Context) {
	var tpl model.Template
	if err := c.ShouldBindJSON(&tpl); err != nil {
		badRequest(c, err)
		return
	}
	if tpl.Nature == "" {
		tpl.Nature = damage.DefaultNature
	}
	if err := h.svc.CheckTemplate(tpl); err != nil {
		writeError(c, err)
		return
	}
	created, err := h.templates.Create(c.Request.Context(), tpl)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getTemplate(c *gin.Context) {
	id, ok := templateID(c)
	if !ok {
		return
	}
	tpl, err := h.templates.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *Handler) listTemplates(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		writeError(c, &model.ValidationError{Field: "owner", Value: "", Reason: "is required"})
		return
	}
	list, err := h.templates.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) deleteTemplate(c *gin.Context) {
	id, ok := templateID(c)
	if !ok {
		return
	}
	if err := h.templates.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func templateID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(c, &model.ValidationError{Field: "id", Value: raw, Reason: "must be a positive integer"})
		return 0, false
	}
	return id, true
}
