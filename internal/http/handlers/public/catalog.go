package public

import (
	"strconv"
	"strings"

	"github.com/rpg-companion/api/internal/http/response"
	"github.com/rpg-companion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListRaces lists playable races
func (h *Handler) ListRaces(c *gin.Context) {
	races, err := h.CatalogService.ListRaces(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"items": races})
}

// GetRace returns one race
func (h *Handler) GetRace(c *gin.Context) {
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		respondCatalogError(c, service.ErrRaceNotFound)
		return
	}
	race, err := h.CatalogService.GetRace(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, race)
}

// ListClasses lists classes
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.CatalogService.ListClasses(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"items": classes})
}

// GetClass returns one class with its skills
func (h *Handler) GetClass(c *gin.Context) {
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		respondCatalogError(c, service.ErrClassNotFound)
		return
	}
	class, err := h.CatalogService.GetClass(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, class)
}

// ListClassSkills lists the skills of a class, optionally up to ?maxLevel=
func (h *Handler) ListClassSkills(c *gin.Context) {
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		respondCatalogError(c, service.ErrClassNotFound)
		return
	}
	skills, err := h.CatalogService.ListClassSkills(c.Request.Context(), id, queryInt(c, "maxLevel"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"items": skills})
}

// ListSkills lists skills by ?classId=, ?maxLevel= or name search ?q=
func (h *Handler) ListSkills(c *gin.Context) {
	var (
		skills interface{}
		err    error
	)
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		skills, err = h.CatalogService.SearchSkills(term)
	} else {
		classID, _ := parseUintParam(c.Query("classId"))
		skills, err = h.CatalogService.ListSkills(c.Request.Context(), classID, queryInt(c, "maxLevel"))
	}
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"items": skills})
}

func parseUintParam(raw string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
