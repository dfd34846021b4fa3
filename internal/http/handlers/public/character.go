package public

import (
	"strings"

	handlershared "github.com/rpg-companion/api/internal/http/handlers/shared"
	"github.com/rpg-companion/api/internal/http/response"
	"github.com/rpg-companion/api/internal/i18n"
	"github.com/rpg-companion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListMyCharacters lists the caller's characters
func (h *Handler) ListMyCharacters(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := handlershared.PaginationFromQuery(c)
	classID, _ := parseUintParam(c.Query("classId"))
	raceID, _ := parseUintParam(c.Query("racaId"))
	characters, total, err := h.CharacterService.List(c.Request.Context(), uid, service.CharacterListInput{
		Page:     page,
		PageSize: pageSize,
		ClassID:  classID,
		RaceID:   raceID,
		Search:   strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		respondCharacterError(c, err)
		return
	}
	response.SuccessWithPage(c, characters, response.NewPagination(page, pageSize, total))
}

// CreateCharacter creates a character for the caller
func (h *Handler) CreateCharacter(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req service.CharacterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	character, err := h.CharacterService.Create(c.Request.Context(), uid, req)
	if err != nil {
		respondCharacterError(c, err)
		return
	}
	response.Created(c, gin.H{
		"message":    i18n.T(i18n.ResolveLocale(c), "msg.character_created"),
		"personagem": character,
	})
}

// GetCharacter returns one of the caller's characters
func (h *Handler) GetCharacter(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	character, err := h.CharacterService.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondCharacterError(c, err)
		return
	}
	response.Success(c, character)
}

// UpdateCharacter replaces a character's editable fields
func (h *Handler) UpdateCharacter(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req service.CharacterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	character, err := h.CharacterService.Update(c.Request.Context(), uid, c.Param("id"), req)
	if err != nil {
		respondCharacterError(c, err)
		return
	}
	response.Message(c, i18n.T(i18n.ResolveLocale(c), "msg.character_updated"), gin.H{
		"personagem": character,
	})
}

// DeleteCharacter removes a character
func (h *Handler) DeleteCharacter(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CharacterService.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondCharacterError(c, err)
		return
	}
	response.Message(c, i18n.T(i18n.ResolveLocale(c), "msg.character_deleted"), nil)
}
