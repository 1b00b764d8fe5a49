package quotes

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/koscakluka/ema-skills/core/skills/quotes"

var logger = otelslog.NewLogger(scopeName)
