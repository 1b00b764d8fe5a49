package quotes

import dialog "github.com/koscakluka/ema-skills/core"

// Manifest publishes the skill's intent surface.
func (s *Skill) Manifest() dialog.Manifest {
	return dialog.Manifest{
		SkillID: s.id,
		Intents: []dialog.IntentSpec{
			{Name: IntentTellSomething},
			{Name: IntentHelp},
		},
	}
}
