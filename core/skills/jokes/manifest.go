package jokes

import dialog "github.com/koscakluka/ema-skills/core"

// Manifest publishes the skill's intent surface; none of the knock-knock
// intents carry slots.
func (s *Skill) Manifest() dialog.Manifest {
	return dialog.Manifest{
		SkillID: s.id,
		Intents: []dialog.IntentSpec{
			{Name: IntentTellMeAJoke},
			{Name: IntentWhosThere},
			{Name: IntentSetupNameWho},
			{Name: IntentHelp},
		},
	}
}
