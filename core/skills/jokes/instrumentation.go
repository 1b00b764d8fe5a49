package jokes

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/koscakluka/ema-skills/core/skills/jokes"

var logger = otelslog.NewLogger(scopeName)
