package planner

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	kcalPerKg       = 7700
	lbPerKg         = 2.2
	kcalPerLb       = 3500
	weeksPerMonth   = 4
	outlookMonths   = 3
	adaptationDecay = 0.1
)

var namedFrequencies = map[string]float64{
	"Every day":          7,
	"4-6 times per week": 5,
	"2-3 times per week": 2,
	"Weekends only":      2,
	"Rarely":             0,
}

var perWeekRe = regexp.MustCompile(`^(\d+)(?:-\d+|\+)? times a week$`)

type TakeoutHabits struct {
	Frequency  string `json:"frequency"`
	SpendRange string `json:"spendRange"`
	Calories   int    `json:"calories"`
}

type ForecastResult struct {
	WeeklySpend         float64 `json:"weeklySpend"`
	MonthlySpend        float64 `json:"monthlySpend"`
	MonthlyCalories     float64 `json:"monthlyCalories"`
	ProjectedWeightLoss float64 `json:"projectedWeightLoss"`
}

// Forecast projects what current takeout habits cost per month and how much
// weight three months without them would take off, in pounds.
func Forecast(h TakeoutHabits) ForecastResult {
	perWeek := WeeklyFrequency(h.Frequency)
	weekly := AverageSpend(h.SpendRange) * perWeek
	calories := float64(h.Calories) * perWeek * weeksPerMonth
	return ForecastResult{
		WeeklySpend:         weekly,
		MonthlySpend:        weekly * weeksPerMonth,
		MonthlyCalories:     calories,
		ProjectedWeightLoss: calories * outlookMonths / kcalPerKg * lbPerKg,
	}
}

// WeeklyFrequency reads a frequency answer as orders per week. Onboarding
// buckets like "2-3 times a week" count their lower bound, "5+ times a week"
// counts 5, and anything unknown counts once.
func WeeklyFrequency(frequency string) float64 {
	f := strings.ReplaceAll(strings.TrimSpace(frequency), "–", "-")
	if n, ok := namedFrequencies[f]; ok {
		return n
	}
	if m := perWeekRe.FindStringSubmatch(f); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return float64(n)
		}
	}
	return 1
}

type MonthOutlook struct {
	Month      int     `json:"month"`
	Money      float64 `json:"money"`
	Calories   int     `json:"calories"`
	WeightLoss float64 `json:"weightLoss"`
}

type Outlook struct {
	Months          []MonthOutlook `json:"months"`
	TotalMoney      float64        `json:"totalMoney"`
	TotalCalories   int            `json:"totalCalories"`
	TotalWeightLoss float64        `json:"totalWeightLoss"`
}

// ThreeMonthOutlook spreads monthly savings over three months, shrinking
// each month by 10% as habits adapt. Totals add up the rounded months.
func ThreeMonthOutlook(monthlySpend, monthlyCalories float64) Outlook {
	var out Outlook
	var money, weight float64
	for m := 1; m <= outlookMonths; m++ {
		factor := 1 - adaptationDecay*float64(m)
		calories := monthlyCalories * factor
		month := MonthOutlook{
			Month:      m,
			Money:      roundTo(monthlySpend*factor, 2),
			Calories:   int(math.Round(calories)),
			WeightLoss: roundTo(calories/kcalPerLb, 1),
		}
		out.Months = append(out.Months, month)
		money += month.Money
		weight += month.WeightLoss
		out.TotalCalories += month.Calories
	}
	out.TotalMoney = roundTo(money, 2)
	out.TotalWeightLoss = roundTo(weight, 1)
	return out
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
