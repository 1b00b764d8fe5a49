package scores

import dialog "github.com/koscakluka/ema-skills/core"

type addPlayerSlots struct {
	PlayerName string `json:"PlayerName" jsonschema:"title=PlayerName,description=First name of the player to add"`
}

type addScoreSlots struct {
	PlayerName  string `json:"PlayerName" jsonschema:"title=PlayerName,description=First name of the player receiving points"`
	ScoreNumber int    `json:"ScoreNumber" jsonschema:"title=ScoreNumber,description=Number of points to give; may be negative"`
}

// Manifest publishes the skill's intent surface, including slot schemas
// for the slot-carrying intents.
func (s *Skill) Manifest() dialog.Manifest {
	return dialog.Manifest{
		SkillID: s.id,
		Intents: []dialog.IntentSpec{
			{Name: IntentAddPlayer, Slots: dialog.SlotSchema(&addPlayerSlots{})},
			{Name: IntentAddScore, Slots: dialog.SlotSchema(&addScoreSlots{})},
			{Name: IntentTellScores},
			{Name: IntentResetPlayers},
			{Name: IntentHelp},
		},
	}
}
