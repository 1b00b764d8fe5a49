package scores

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/koscakluka/ema-skills/core/skills/scores"

var logger = otelslog.NewLogger(scopeName)
