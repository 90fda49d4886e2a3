package currency

import (
	"github.com/rs/zerolog"
)

func (g RealizedGain) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Account", g.Account).
		Str("Security", g.Security).
		Time("OpenDate", g.OpenDate).
		Time("GainDate", g.GainDate).
		Str("Units", g.Units.String()).
		Str("Currency", g.Currency).
		Str("Cost", g.Cost.String()).
		Str("Proceeds", g.Proceeds.String()).
		Bool("LongTerm", g.LongTerm)
}
