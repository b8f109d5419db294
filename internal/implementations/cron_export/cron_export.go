package cronexport

import (
	"fmt"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"sort"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

type cronField struct {
	key string
	min int
	max int
	// shift converts a recurrence value to its cron value.
	shift int
	// level orders fields by granularity; day of month and day of week share
	// one.
	level int
}

// Field order of a cron spec with seconds.
var cronFields = []cronField{
	{key: "s", min: 0, max: 59, level: 0},
	{key: "m", min: 0, max: 59, level: 1},
	{key: "h", min: 0, max: 23, level: 2},
	{key: "D", min: 1, max: 31, level: 3},
	{key: "M", min: 1, max: 12, level: 4},
	{key: "d", min: 0, max: 6, shift: -1, level: 3},
}

type Exporter struct {
	parser cron.Parser
}

func New() *Exporter {
	return &Exporter{
		parser: cron.NewParser(
			cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
		),
	}
}

// Export renders a result holding a single schedule of plain second, minute,
// hour, day of month, month and day of week constraints as a cron spec.
// A schedule fires at the start of every matching period, so unconstrained
// fields finer than the finest constrained one are pinned to their minimum.
func (e *Exporter) Export(result recurrence.Result) (string, error) {
	if !result.OK() {
		return "", fmt.Errorf("result has an error at offset %d, %w", result.Error, schedule.ErrNotExpressibleAsCron)
	}
	if len(result.Schedules) != 1 || len(result.Exceptions) != 0 {
		return "", fmt.Errorf("only a single schedule without exceptions can be exported, %w", schedule.ErrNotExpressibleAsCron)
	}

	set := result.Schedules[0]
	known := make(map[string]bool, len(cronFields))
	for _, f := range cronFields {
		known[f.key] = true
	}
	for key := range set {
		if !known[key] {
			return "", fmt.Errorf("constraint %q has no cron field, %w", key, schedule.ErrNotExpressibleAsCron)
		}
	}
	// cron matches either day field, a constraint set needs both.
	_, hasDayOfMonth := set["D"]
	_, hasDayOfWeek := set["d"]
	if hasDayOfMonth && hasDayOfWeek {
		return "", fmt.Errorf("day of month and day of week are both constrained, %w", schedule.ErrNotExpressibleAsCron)
	}

	finest := len(cronFields)
	for _, f := range cronFields {
		if _, ok := set[f.key]; ok && f.level < finest {
			finest = f.level
		}
	}

	parts := make([]string, 0, len(cronFields))
	for _, f := range cronFields {
		values, ok := set[f.key]
		switch {
		case !ok && f.level < finest && f.key != "d":
			parts = append(parts, strconv.Itoa(f.min))
			continue
		case !ok:
			parts = append(parts, "*")
			continue
		}
		part, err := render(f, values)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}

	spec := strings.Join(parts, " ")
	if _, err := e.parser.Parse(spec); err != nil {
		return "", fmt.Errorf("invalid cron spec %q: %v, %w", spec, err, schedule.ErrNotExpressibleAsCron)
	}
	return spec, nil
}

func render(f cronField, values []int) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("constraint %q is empty, %w", f.key, schedule.ErrNotExpressibleAsCron)
	}

	shifted := make([]int, 0, len(values))
	for _, v := range values {
		v += f.shift
		if v < f.min || v > f.max {
			return "", fmt.Errorf("value %d of %q is out of range, %w", v, f.key, schedule.ErrNotExpressibleAsCron)
		}
		shifted = append(shifted, v)
	}
	sort.Ints(shifted)

	if len(shifted) >= 2 {
		step := shifted[1] - shifted[0]
		regular := true
		for i := 2; i < len(shifted); i++ {
			if shifted[i]-shifted[i-1] != step {
				regular = false
				break
			}
		}
		first, last := shifted[0], shifted[len(shifted)-1]
		switch {
		case regular && step == 1 && first == f.min && last == f.max:
			return "*", nil
		case regular && step == 1:
			return fmt.Sprintf("%d-%d", first, last), nil
		case regular && len(shifted) > 2 && first == f.min && last+step > f.max:
			return fmt.Sprintf("*/%d", step), nil
		case regular && len(shifted) > 2:
			return fmt.Sprintf("%d-%d/%d", first, last, step), nil
		}
	}

	rendered := make([]string, 0, len(shifted))
	for _, v := range shifted {
		rendered = append(rendered, strconv.Itoa(v))
	}
	return strings.Join(rendered, ","), nil
}
