package models

import (
	"github.com/rpg-companion/api/internal/logger"

	"gorm.io/gorm"
)

type seedClass struct {
	Class  Class
	Skills []Skill
}

var defaultRaces = []Race{
	{Name: "Humano", Description: "Versáteis e ambiciosos, adaptam-se a qualquer vocação.", Bonus: AttributeBonus{Strength: 1, Dexterity: 1, Constitution: 1, Intelligence: 1, Wisdom: 1, Charisma: 1}},
	{Name: "Elfo", Description: "Longevos, graciosos e ligados à magia antiga.", Bonus: AttributeBonus{Dexterity: 2, Intelligence: 1}},
	{Name: "Anão", Description: "Robustos artesãos das montanhas.", Bonus: AttributeBonus{Constitution: 2, Strength: 1}},
	{Name: "Halfling", Description: "Pequenos, ágeis e surpreendentemente sortudos.", Bonus: AttributeBonus{Dexterity: 2, Charisma: 1}},
	{Name: "Meio-Orc", Description: "Ferozes e resistentes, herdeiros de duas linhagens.", Bonus: AttributeBonus{Strength: 2, Constitution: 1}},
}

var defaultClasses = []seedClass{
	{
		Class: Class{Name: "Guerreiro", Description: "Mestre de armas e armaduras.", HitDie: 10, PrimaryAttribute: "forca"},
		Skills: []Skill{
			{Name: "Retomar o Fôlego", Description: "Recupera pontos de vida durante o combate.", MinLevel: 1},
			{Name: "Surto de Ação", Description: "Realiza uma ação adicional no turno.", MinLevel: 2},
			{Name: "Ataque Extra", Description: "Ataca duas vezes ao usar a ação de ataque.", MinLevel: 5},
		},
	},
	{
		Class: Class{Name: "Mago", Description: "Estudioso das artes arcanas.", HitDie: 6, PrimaryAttribute: "inteligencia"},
		Skills: []Skill{
			{Name: "Mísseis Mágicos", Description: "Dardos de energia que nunca erram o alvo.", MinLevel: 1},
			{Name: "Recuperação Arcana", Description: "Recupera espaços de magia num descanso curto.", MinLevel: 1},
			{Name: "Bola de Fogo", Description: "Explosão flamejante em área.", MinLevel: 5},
		},
	},
	{
		Class: Class{Name: "Ladino", Description: "Especialista em furtividade e precisão.", HitDie: 8, PrimaryAttribute: "destreza"},
		Skills: []Skill{
			{Name: "Ataque Furtivo", Description: "Dano extra contra alvos desprevenidos.", MinLevel: 1},
			{Name: "Ação Ardilosa", Description: "Esconder-se ou desengajar como ação bônus.", MinLevel: 2},
			{Name: "Esquiva Sobrenatural", Description: "Reduz à metade o dano de um ataque.", MinLevel: 5},
		},
	},
	{
		Class: Class{Name: "Clérigo", Description: "Canal do poder divino.", HitDie: 8, PrimaryAttribute: "sabedoria"},
		Skills: []Skill{
			{Name: "Curar Ferimentos", Description: "Restaura pontos de vida com um toque.", MinLevel: 1},
			{Name: "Canalizar Divindade", Description: "Invoca um efeito sagrado do seu domínio.", MinLevel: 2},
			{Name: "Destruir Mortos-Vivos", Description: "Aniquila mortos-vivos fracos expulsos.", MinLevel: 5},
		},
	},
}

// SeedCatalog inserts the default races, classes and skills. Rows are matched
// by name so running it repeatedly never duplicates entries.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		created := 0
		for _, race := range defaultRaces {
			row := race
			result := tx.Where("nome = ?", row.Name).FirstOrCreate(&row)
			if result.Error != nil {
				return result.Error
			}
			created += int(result.RowsAffected)
		}
		for _, item := range defaultClasses {
			class := item.Class
			result := tx.Where("nome = ?", class.Name).FirstOrCreate(&class)
			if result.Error != nil {
				return result.Error
			}
			created += int(result.RowsAffected)
			for _, skill := range item.Skills {
				row := skill
				row.ClassID = class.ID
				result := tx.Where("class_id = ? AND nome = ?", class.ID, row.Name).FirstOrCreate(&row)
				if result.Error != nil {
					return result.Error
				}
				created += int(result.RowsAffected)
			}
		}
		logger.Infow("catalog_seeded", "created", created)
		return nil
	})
}
