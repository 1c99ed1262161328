package apihandlers

import (
	"log/slog"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dicegame/pkg/judge"
)

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	v1 := rg.Group("/v1")

	v1.POST("/deal", h.deal)
	v1.POST("/check", RequirePayload(), h.check)
}

// RequirePayload blocks post requests that have no payload attached
func RequirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			slog.Debug("RequirePayload Middleware: payload missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload missing"})
			return
		}
		c.Next()
	}
}

type DealResp struct {
	Numbers []uint32 `json:"numbers"`
	Target  string   `json:"target"`
}

func (h *HttpEndpoints) deal(c *gin.Context) {
	c.JSON(http.StatusOK, DealResp{
		Numbers: h.dealer.Deal(),
		Target:  strconv.FormatInt(h.target, 10),
	})
}

type CheckReq struct {
	Numbers    []uint32 `json:"numbers"`
	Expression string   `json:"expression"`
	Target     *int64   `json:"target"`
}

func (h *HttpEndpoints) check(c *gin.Context) {
	var req CheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("invalid check request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Numbers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "numbers missing"})
		return
	}
	if len(req.Expression) > h.maxExpressionLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expression too long"})
		return
	}

	target := h.target
	if req.Target != nil {
		target = *req.Target
	}

	verdict := judge.New(req.Numbers, big.NewRat(target, 1)).Judge(req.Expression)
	slog.Debug("answer judged",
		slog.Bool("correct", verdict.Correct),
		slog.String("stage", string(verdict.Stage)),
	)
	c.JSON(http.StatusOK, verdict)
}
