package dto

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterCustomValidators(); err != nil {
		panic(err)
	}
}

func bindQuery(t *testing.T, rawQuery string, target any) error {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/cars?"+rawQuery, nil)
	return c.ShouldBindQuery(target)
}

func bindForm(t *testing.T, form url.Values, target any) error {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/cars",
		strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.ShouldBind(target)
}

func validListingForm() url.Values {
	return url.Values{
		"make":         {"Honda"},
		"carModel":     {"Civic"},
		"year":         {"2019"},
		"color":        {"Preto"},
		"mileage":      {"58200"},
		"price":        {"98500.00"},
		"vin":          {"9BWZZZ377VT004251"},
		"fuelType":     {"Gasoline"},
		"transmission": {"MANUAL"},
	}
}

func TestAddCarListingRequest(t *testing.T) {
	t.Run("aceita formulário válido e converte o preço para decimal", func(t *testing.T) {
		var req AddCarListingRequest
		if err := bindForm(t, validListingForm(), &req); err != nil {
			t.Fatalf("esperava sucesso no binding, obteve erro: %v", err)
		}

		input, err := req.ToInput()
		if err != nil {
			t.Fatalf("esperava sucesso na conversão, obteve erro: %v", err)
		}
		if input.Price.String() != "98500" {
			t.Errorf("esperava preço 98500, obteve '%s'", input.Price)
		}
	})

	t.Run("rejeita ano no futuro", func(t *testing.T) {
		form := validListingForm()
		form.Set("year", fmt.Sprintf("%d", time.Now().Year()+1))

		var req AddCarListingRequest
		if err := bindForm(t, form, &req); err == nil {
			t.Error("esperava erro de validação para ano futuro")
		}
	})

	t.Run("rejeita tipo de combustível desconhecido", func(t *testing.T) {
		form := validListingForm()
		form.Set("fuelType", "Steam")

		var req AddCarListingRequest
		if err := bindForm(t, form, &req); err == nil {
			t.Error("esperava erro de validação para combustível desconhecido")
		}
	})

	t.Run("rejeita preço não numérico na conversão", func(t *testing.T) {
		form := validListingForm()
		form.Set("price", "caro")

		var req AddCarListingRequest
		if err := bindForm(t, form, &req); err != nil {
			t.Fatalf("esperava sucesso no binding, obteve erro: %v", err)
		}
		if _, err := req.ToInput(); err == nil {
			t.Error("esperava erro de conversão para preço não numérico")
		}
	})

	t.Run("rejeita preço negativo na conversão", func(t *testing.T) {
		form := validListingForm()
		form.Set("price", "-1.00")

		var req AddCarListingRequest
		if err := bindForm(t, form, &req); err != nil {
			t.Fatalf("esperava sucesso no binding, obteve erro: %v", err)
		}
		if _, err := req.ToInput(); err == nil {
			t.Error("esperava erro de conversão para preço negativo")
		}
	})
}

func TestCarSearchFilterRequest(t *testing.T) {
	t.Run("converte a query para filtros tipados", func(t *testing.T) {
		var req CarSearchFilterRequest
		err := bindQuery(t, "make=Toyota&yearMin=2018&priceMax=150000.00&sortParameter=price&sortOrder=asc&page=2&limit=20", &req)
		if err != nil {
			t.Fatalf("esperava sucesso no binding, obteve erro: %v", err)
		}

		filters, err := req.ToFilters()
		if err != nil {
			t.Fatalf("esperava sucesso na conversão, obteve erro: %v", err)
		}
		if filters.Make == nil || *filters.Make != "Toyota" {
			t.Errorf("esperava make 'Toyota', obteve %v", filters.Make)
		}
		if filters.YearMin == nil || *filters.YearMin != 2018 {
			t.Errorf("esperava yearMin 2018, obteve %v", filters.YearMin)
		}
		if filters.PriceMax == nil || filters.PriceMax.String() != "150000" {
			t.Errorf("esperava priceMax 150000, obteve %v", filters.PriceMax)
		}
		if filters.Page != 2 || filters.Limit != 20 {
			t.Errorf("esperava page 2 e limit 20, obteve %d e %d", filters.Page, filters.Limit)
		}
	})

	t.Run("query vazia não restringe nada", func(t *testing.T) {
		var req CarSearchFilterRequest
		if err := bindQuery(t, "", &req); err != nil {
			t.Fatalf("esperava sucesso no binding, obteve erro: %v", err)
		}

		filters, err := req.ToFilters()
		if err != nil {
			t.Fatalf("esperava sucesso na conversão, obteve erro: %v", err)
		}
		if filters.Make != nil || filters.CarModel != nil || filters.PriceMin != nil {
			t.Errorf("esperava filtros vazios, obteve %+v", filters)
		}
		if filters.Page != 1 || filters.Limit != 10 {
			t.Errorf("esperava defaults page 1 e limit 10, obteve %d e %d", filters.Page, filters.Limit)
		}
	})

	t.Run("zero explícito na query não vira default", func(t *testing.T) {
		var req CarSearchFilterRequest
		if err := bindQuery(t, "limit=0", &req); err == nil {
			t.Error("esperava erro de validação para limit=0")
		}
	})

	t.Run("rejeita page menor ou igual a zero", func(t *testing.T) {
		var req CarSearchFilterRequest
		if err := bindQuery(t, "page=0", &req); err == nil {
			t.Error("esperava erro de validação para page=0")
		}

		req = CarSearchFilterRequest{}
		if err := bindQuery(t, "page=-3", &req); err == nil {
			t.Error("esperava erro de validação para page negativo")
		}
	})

	t.Run("rejeita campo de ordenação desconhecido", func(t *testing.T) {
		var req CarSearchFilterRequest
		if err := bindQuery(t, "sortParameter=color", &req); err == nil {
			t.Error("esperava erro de validação para sortParameter desconhecido")
		}
	})

	t.Run("rejeita priceMin não numérico na conversão", func(t *testing.T) {
		var req CarSearchFilterRequest
		if err := bindQuery(t, "priceMin=barato", &req); err != nil {
			t.Fatalf("esperava sucesso no binding, obteve erro: %v", err)
		}
		if _, err := req.ToFilters(); err == nil {
			t.Error("esperava erro de conversão para priceMin não numérico")
		}
	})
}
