package api

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/betbot/gausscdf/pkg/gaussian"
)

type cdfRequest struct {
	X     string `json:"x" binding:"required"`
	Mu    string `json:"mu" binding:"required"`
	Sigma string `json:"sigma" binding:"required"`
}

type erfcRequest struct {
	Input string `json:"input" binding:"required"`
}

type mathResponse struct {
	Result    string `json:"result"`     // 十进制字符串（18 位小数）
	ResultWad string `json:"result_wad"` // WAD 标度整数
	RequestID string `json:"request_id"`
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func (s *Server) handleCdf(c *gin.Context) {
	var req cdfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid_request", err.Error())
		return
	}

	x, err := parseWad(req.X)
	if err != nil {
		s.badRequest(c, "invalid_decimal", "x: "+err.Error())
		return
	}
	mu, err := parseWad(req.Mu)
	if err != nil {
		s.badRequest(c, "invalid_decimal", "mu: "+err.Error())
		return
	}
	sigma, err := parseWad(req.Sigma)
	if err != nil {
		s.badRequest(c, "invalid_decimal", "sigma: "+err.Error())
		return
	}

	result, err := gaussian.Cdf(x, mu, sigma)
	if err != nil {
		s.badRequest(c, boundsCode(err), err.Error())
		return
	}
	s.ok(c, result)
}

func (s *Server) handleErfc(c *gin.Context) {
	var req erfcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid_request", err.Error())
		return
	}
	input, err := parseWad(req.Input)
	if err != nil {
		s.badRequest(c, "invalid_decimal", "input: "+err.Error())
		return
	}
	s.ok(c, gaussian.Erfc(input))
}

func (s *Server) ok(c *gin.Context, wad *big.Int) {
	c.JSON(http.StatusOK, mathResponse{
		Result:    decimal.NewFromBigInt(wad, -18).String(),
		ResultWad: wad.String(),
		RequestID: c.GetString(requestIDKey),
	})
}

func (s *Server) badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Code:      code,
		Message:   msg,
		RequestID: c.GetString(requestIDKey),
	})
}

func boundsCode(err error) string {
	switch {
	case errors.Is(err, gaussian.ErrXOutOfBounds):
		return "x_out_of_bounds"
	case errors.Is(err, gaussian.ErrMuOutOfBounds):
		return "mu_out_of_bounds"
	case errors.Is(err, gaussian.ErrSigmaOutOfBounds):
		return "sigma_out_of_bounds"
	default:
		return "arithmetic_error"
	}
}

// parseWad 将十进制字符串精确转为 WAD 整数，超出 18 位小数的部分向零截断。
func parseWad(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return d.Shift(18).BigInt(), nil
}
