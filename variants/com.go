package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
)

func init() {
	register(contract.COM, Entry{
		Schedule:   cshSchedule,
		Initialize: cshInitialize,
		POF:        comPOF,
		STF:        cshSTF,
		Accrue:     NoAccrual,
	})
}

// comPOF never generates a cash payoff on its own: COM only tracks
// quantity (Notional holds the held quantity, not a currency amount), and
// only produces a payoff when a behavioral callout injects a trade.
func comPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	return 0, nil
}
