package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthsure/premium-api/models"
	"github.com/healthsure/premium-api/services/premium"
	"github.com/healthsure/premium-api/utils"
)

type Premium struct {
	server *Server
}

func (p Premium) router(server *Server) {
	p.server = server

	serverGroupV1 := server.router.Group("/api/v1/healths")
	serverGroupV1.POST("premiums", p.quote)
	serverGroupV1.POST("premiums/loads", p.loadMatrix)
	serverGroupV1.POST("premiums/unloads", p.unloadMatrix)
	serverGroupV1.GET("premiums/checks", p.checkMatrix)
}

func (p *Premium) quote(ctx *gin.Context) {
	if ctx.ContentType() != "application/json" {
		msg := fmt.Sprintf("Header %s not provided or invalid", "content-type")
		ctx.JSON(http.StatusBadRequest, models.NewError(premium.CodeInvalidHeader, msg))
		return
	}

	var request models.PremiumRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewError(premium.CodeInvalidInput, "please check code, sum insured and date of birth"))
		return
	}

	quote, err := p.server.rating.Quote(ctx, premium.QuoteInput{
		Code:        request.Code,
		SumInsured:  request.SumInsured,
		DateOfBirth: request.DateOfBirth,
	})
	if err != nil {
		p.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.PremiumResponse{Premium: quote})
}

func (p *Premium) loadMatrix(ctx *gin.Context) {
	if err := p.server.rating.Load(ctx); err != nil {
		p.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.NewStatus("premium matrix loaded"))
}

func (p *Premium) unloadMatrix(ctx *gin.Context) {
	if err := p.server.rating.Unload(ctx); err != nil {
		p.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.NewStatus("premium matrix unloaded"))
}

func (p *Premium) checkMatrix(ctx *gin.Context) {
	loaded, err := p.server.rating.Loaded(ctx)
	if err != nil {
		p.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.MatrixStatusResponse{Loaded: loaded, Version: utils.REVISION})
}

func (p *Premium) handleError(ctx *gin.Context, err error) {
	p.server.logger.Error(err)

	switch code := premium.CodeFor(err); code {
	case premium.CodeInvalidInput:
		ctx.JSON(http.StatusBadRequest, models.NewError(code, "Invalid request"))
	case premium.CodeRiskCalculation:
		ctx.JSON(http.StatusUnprocessableEntity, models.NewError(code, "Cannot calculate risk for input"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewError(code, "Internal server error"))
	}
}
