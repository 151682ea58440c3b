package appointment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/barberlane/booking-engine/internal/models"
)

var dayLabels = []string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

const advisoryMessage = "O atendimento neste dia é facultativo. Confirme com o profissional antes de comparecer."

// ComputeAvailability é função pura sobre o estado lido: expediente do dia
// menos horários já ocupados, em ordem crescente. Slots de hora cheia.
func ComputeAvailability(
	in AvailabilityInput,
	hours []models.WorkingHours,
	occupied []string,
) Availability {

	weekday := int(in.Date.Weekday())

	out := Availability{
		Slots:    []string{},
		DayLabel: dayLabels[weekday],
	}

	open := false
	for _, wh := range hours {
		if wh.Available {
			open = true
			break
		}
	}

	if !open {
		if weekday == in.AdvisoryWeekday {
			out.Advisory = advisoryMessage
		}
		return out
	}

	taken := make(map[string]bool, len(occupied))
	for _, t := range occupied {
		taken[normalizeHour(t)] = true
	}

	seen := make(map[string]bool)
	for _, wh := range hours {
		if !wh.Available {
			continue
		}
		for h := hourOf(wh.StartTime); h < hourOf(wh.EndTime); h++ {
			slot := fmt.Sprintf("%02d:00", h)
			if taken[slot] || seen[slot] {
				continue
			}
			seen[slot] = true
			out.Slots = append(out.Slots, slot)
		}
	}

	sort.Strings(out.Slots)
	return out
}

func hourOf(hm string) int {
	h, _ := strconv.Atoi(strings.SplitN(hm, ":", 2)[0])
	return h
}

func normalizeHour(hm string) string {
	return fmt.Sprintf("%02d:00", hourOf(hm))
}
