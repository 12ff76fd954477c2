package yahoo

import (
	"math"
	"sort"
	"time"

	"chart_backend/internal/feature/chart/adapters/yahoo/dto"
	"chart_backend/internal/feature/chart/domain/entity"
)

// normalizeResult converts one upstream result into the domain bar series.
// Periods missing any of open/high/low/close/volume (null or zero) are
// dropped entirely rather than null-filled: partial bars are worse than
// absent bars for a chart. The adjusted close replaces the raw close so
// dividend effects follow the provider's own adjustment methodology.
// Upstream ascending order is preserved, not re-sorted.
func normalizeResult(r dto.Result) []entity.Bar {
	bars := make([]entity.Bar, 0, len(r.Timestamp))
	if len(r.Indicators.Quote) == 0 {
		return bars
	}
	q := r.Indicators.Quote[0]

	var adj []*float64
	if len(r.Indicators.Adjclose) > 0 {
		adj = r.Indicators.Adjclose[0].Adjclose
	}

	for i, ts := range r.Timestamp {
		o := floatAt(q.Open, i)
		h := floatAt(q.High, i)
		l := floatAt(q.Low, i)
		c := floatAt(q.Close, i)
		v := intAt(q.Volume, i)
		if o == 0 || h == 0 || l == 0 || c == 0 || v == 0 {
			continue
		}
		if a := floatAt(adj, i); a != 0 {
			c = a
		}
		bars = append(bars, entity.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: v,
		})
	}

	bars = adjustSplits(bars, splitEvents(r.Events))
	for i := range bars {
		bars[i].Open = round2(bars[i].Open)
		bars[i].High = round2(bars[i].High)
		bars[i].Low = round2(bars[i].Low)
		bars[i].Close = round2(bars[i].Close)
	}
	return bars
}

// adjustSplits applies the forward cumulative split convention: walking
// bars in chronological order with a running factor starting at 1.0, the
// factor is multiplied by each split's ratio the moment its effective date
// is reached, and the current factor then scales that bar's prices
// (multiply) and volume (divide, rounded to integer). Bars before the
// first split are unchanged; after a 2-for-1 split prices double and
// volume halves, keeping the whole series comparable in scale.
// Pure function of (ordered bars, ordered split events).
func adjustSplits(bars []entity.Bar, splits []entity.SplitEvent) []entity.Bar {
	if len(splits) == 0 {
		return bars
	}
	out := make([]entity.Bar, len(bars))
	factor := 1.0
	next := 0
	for i, b := range bars {
		for next < len(splits) && !b.Time.Before(splits[next].Date) {
			if splits[next].Ratio > 0 {
				factor *= splits[next].Ratio
			}
			next++
		}
		b.Open *= factor
		b.High *= factor
		b.Low *= factor
		b.Close *= factor
		if factor != 1.0 {
			b.Volume = int64(math.Round(float64(b.Volume) / factor))
		}
		out[i] = b
	}
	return out
}

// splitEvents extracts split events from the upstream events object,
// ordered by effective date ascending.
func splitEvents(ev *dto.Events) []entity.SplitEvent {
	if ev == nil || len(ev.Splits) == 0 {
		return nil
	}
	out := make([]entity.SplitEvent, 0, len(ev.Splits))
	for _, s := range ev.Splits {
		if s.Denominator == 0 {
			continue
		}
		out = append(out, entity.SplitEvent{
			Date:  time.Unix(s.Date, 0).UTC(),
			Ratio: s.Numerator / s.Denominator,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func floatAt(xs []*float64, i int) float64 {
	if i >= len(xs) || xs[i] == nil {
		return 0
	}
	return *xs[i]
}

func intAt(xs []*int64, i int) int64 {
	if i >= len(xs) || xs[i] == nil {
		return 0
	}
	return *xs[i]
}
