package public

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func firstSkillID(t *testing.T, s *testServer, classID uint) uint {
	t.Helper()
	code, body := s.do(http.MethodGet, fmt.Sprintf("/classes/%d/skills?maxLevel=1", classID), nil, "")
	if code != http.StatusOK {
		t.Fatalf("class skills want 200 got %d", code)
	}
	items, _ := body["items"].([]interface{})
	if len(items) == 0 {
		t.Fatalf("class %d has no level 1 skill", classID)
	}
	skill, _ := items[0].(map[string]interface{})
	id, _ := skill["id"].(float64)
	return uint(id)
}

func TestCharacterLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t, "debug")
	owner := s.register("Ana Silva", "ana99", "ana@x.com", "abcdef")
	other := s.register("Bruno Lima", "bruno", "bruno@x.com", "abcdef")
	ownerID, _ := owner["id"].(string)
	otherID, _ := other["id"].(string)

	classID := findClassID(t, s, "Guerreiro")
	skillID := firstSkillID(t, s, classID)

	code, body := s.do(http.MethodPost, "/characters", gin.H{
		"nome":          "Thorin",
		"racaId":        1,
		"classeId":      classID,
		"historia":      "Veio das montanhas.",
		"habilidadeIds": []uint{skillID},
	}, ownerID)
	if code != http.StatusCreated {
		t.Fatalf("create want 201 got %d body=%v", code, body)
	}
	created, _ := body["personagem"].(map[string]interface{})
	characterID, _ := created["id"].(string)
	if characterID == "" || created["nivel"] != float64(1) {
		t.Fatalf("unexpected character: %v", created)
	}

	code, _ = s.do(http.MethodGet, "/characters/"+characterID, nil, otherID)
	if code != http.StatusNotFound {
		t.Fatalf("foreign character want 404 got %d", code)
	}
	code, _ = s.do(http.MethodDelete, "/characters/"+characterID, nil, otherID)
	if code != http.StatusNotFound {
		t.Fatalf("foreign delete want 404 got %d", code)
	}

	code, body = s.do(http.MethodPut, "/characters/"+characterID, gin.H{
		"nome":     "Thorin II",
		"racaId":   1,
		"classeId": classID,
		"nivel":    25,
	}, ownerID)
	if code != http.StatusBadRequest {
		t.Fatalf("level out of range want 400 got %d body=%v", code, body)
	}

	code, body = s.do(http.MethodPut, "/characters/"+characterID, gin.H{
		"nome":     "Thorin II",
		"racaId":   1,
		"classeId": classID,
		"nivel":    5,
	}, ownerID)
	if code != http.StatusOK {
		t.Fatalf("update want 200 got %d body=%v", code, body)
	}
	updated, _ := body["personagem"].(map[string]interface{})
	if updated["nome"] != "Thorin II" || updated["nivel"] != float64(5) {
		t.Fatalf("unexpected update: %v", updated)
	}

	code, body = s.do(http.MethodGet, "/characters", nil, ownerID)
	if code != http.StatusOK {
		t.Fatalf("list want 200 got %d", code)
	}
	if items, _ := body["items"].([]interface{}); len(items) != 1 {
		t.Fatalf("owner should see 1 character got %d", len(items))
	}
	code, body = s.do(http.MethodGet, "/characters", nil, otherID)
	if items, _ := body["items"].([]interface{}); code != http.StatusOK || len(items) != 0 {
		t.Fatalf("other user should see none, got %d items (status %d)", len(items), code)
	}

	code, _ = s.do(http.MethodDelete, "/characters/"+characterID, nil, ownerID)
	if code != http.StatusOK {
		t.Fatalf("delete want 200 got %d", code)
	}
	code, _ = s.do(http.MethodGet, "/characters/"+characterID, nil, ownerID)
	if code != http.StatusNotFound {
		t.Fatalf("deleted character want 404 got %d", code)
	}
}

func TestCreateCharacterRejectsForeignSkill(t *testing.T) {
	s := newTestServer(t, "debug")
	owner := s.register("Ana Silva", "ana99", "ana@x.com", "abcdef")
	ownerID, _ := owner["id"].(string)

	warriorID := findClassID(t, s, "Guerreiro")
	wizardSkill := firstSkillID(t, s, findClassID(t, s, "Mago"))

	code, body := s.do(http.MethodPost, "/characters", gin.H{
		"nome":          "Misturado",
		"racaId":        1,
		"classeId":      warriorID,
		"habilidadeIds": []uint{wizardSkill},
	}, ownerID)
	if code != http.StatusBadRequest {
		t.Fatalf("foreign skill want 400 got %d body=%v", code, body)
	}

	code, _ = s.do(http.MethodPost, "/characters", gin.H{
		"nome":     "Sem Raça",
		"racaId":   999,
		"classeId": warriorID,
	}, ownerID)
	if code != http.StatusBadRequest {
		t.Fatalf("unknown race want 400 got %d", code)
	}

	code, _ = s.do(http.MethodPost, "/characters", gin.H{"nome": "X"}, "")
	if code != http.StatusUnauthorized {
		t.Fatalf("anonymous create want 401 got %d", code)
	}
}
