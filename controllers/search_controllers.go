package controllers

import (
	"errors"
	"net/http"

	"github.com/Jabbcode/restaurante-app/services"
	"github.com/Jabbcode/restaurante-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SearchController struct {
	search *services.SearchService
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{search: services.NewSearchService(db)}
}

// GlobalSearch -> GET /admin/search?q=
// Devuelve tres listas independientes, cada una con tope de 5 resultados.
func (sc *SearchController) GlobalSearch(c *gin.Context) {
	result, err := sc.search.Search(c.Query("q"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al buscar"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Search results", result)
}
