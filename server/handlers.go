package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"korea-realestate/models"
	"korea-realestate/services"
	"korea-realestate/utils"
)

const (
	defaultTrendMonths = 12
	maxTrendMonths     = 36
)

// intQuery reads an integer query parameter, falling back to defaultValue
// when it is absent. A malformed value is a validation error.
func intQuery(c *gin.Context, key string, defaultValue int) (int, error) {
	valueStr := strings.TrimSpace(c.Query(key))
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, models.NewValidationError("%s must be an integer: %q", key, valueStr)
	}
	return value, nil
}

// pagination reads page and perKey with their defaults.
func pagination(c *gin.Context, perKey string, perDefault int) (int, int, error) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	per, err := intQuery(c, perKey, perDefault)
	if err != nil {
		return 0, 0, err
	}
	return page, per, nil
}

// GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/regions?q=마포구
func (s *Server) getRegions(c *gin.Context) {
	matches, err := s.agg.ResolveRegion(c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// dealQuery builds a Query from region (free text) or region_code plus
// year_month, housing, transaction and max_rows.
func (s *Server) dealQuery(c *gin.Context) (models.Query, error) {
	maxRows, err := intQuery(c, "max_rows", models.DefaultMaxRows)
	if err != nil {
		return models.Query{}, err
	}
	q := models.Query{
		RegionCode: strings.TrimSpace(c.Query("region_code")),
		YearMonth:  c.DefaultQuery("year_month", s.now().Format("200601")),
		MaxRows:    maxRows,
	}

	if q.RegionCode == "" {
		if text := c.Query("region"); text != "" {
			r, err := s.agg.ResolveUniqueRegion(text)
			if err != nil {
				return q, err
			}
			q.RegionCode = r.LawdCode()
		}
	}

	h, err := models.ParseHousingType(c.DefaultQuery("housing", "apartment"))
	if err != nil {
		return q, err
	}
	q.Housing = h

	tx, err := models.ParseTransactionType(c.DefaultQuery("transaction", "trade"))
	if err != nil {
		return q, err
	}
	q.Transaction = tx
	return q, nil
}

// GET /api/deals
func (s *Server) getDeals(c *gin.Context) {
	q, err := s.dealQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := s.agg.Deals(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/trend?region=마포구&months=12
func (s *Server) getTrend(c *gin.Context) {
	q, err := s.dealQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	n, err := intQuery(c, "months", defaultTrendMonths)
	if err != nil {
		writeError(c, err)
		return
	}
	if n < 1 || n > maxTrendMonths {
		writeError(c, models.NewValidationError("months must be between 1 and %d", maxTrendMonths))
		return
	}

	points, err := s.trend.Run(c.Request.Context(), q, utils.RecentMonths(s.now(), n))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GET /api/subscriptions?page=1&per_page=10
func (s *Server) getSubscriptions(c *gin.Context) {
	page, perPage, err := pagination(c, "per_page", 10)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := s.agg.SubscriptionInfo(c.Request.Context(), page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/subscriptions/stats/:kind?year_month=202501
func (s *Server) getSubscriptionStats(c *gin.Context) {
	page, perPage, err := pagination(c, "per_page", 10)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := s.agg.SubscriptionStats(c.Request.Context(), c.Param("kind"), c.Query("year_month"), page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/onbid
func (s *Server) getOnbid(c *gin.Context) {
	page, rows, err := pagination(c, "rows", 20)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := s.agg.OnbidItems(c.Request.Context(), models.OnbidQuery{
		PageNo:        page,
		NumOfRows:     rows,
		Sido:          c.Query("sido"),
		Sigungu:       c.Query("sigungu"),
		OpenDateStart: c.Query("start"),
		OpenDateEnd:   c.Query("end"),
		ItemName:      c.Query("q"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		writeError(c, models.NewValidationError("invalid request body: %v", err))
		return false
	}
	return true
}

// POST /api/calc/loan
func (s *Server) postLoan(c *gin.Context) {
	var in models.LoanInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := services.LoanAmortization(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/calc/compound
func (s *Server) postCompound(c *gin.Context) {
	var in models.CompoundInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := services.CompoundGrowth(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/calc/cashflow
func (s *Server) postCashflow(c *gin.Context) {
	var in models.CashflowInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := services.MonthlyCashflow(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
