package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dicegame/pkg/dice"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	dealer              *dice.Dealer
	target              int64
	maxExpressionLength int
}

func NewHTTPHandler(
	dealer *dice.Dealer,
	target int64,
	maxExpressionLength int,
) *HttpEndpoints {
	return &HttpEndpoints{
		dealer:              dealer,
		target:              target,
		maxExpressionLength: maxExpressionLength,
	}
}
