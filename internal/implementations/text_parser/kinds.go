package textparser

import (
	"fmt"
	"regexp"
)

// TokenKind is the lexical category of a token.
type TokenKind int

const (
	KindNone TokenKind = iota
	KindEOF
	KindRank
	KindTime
	KindDayName
	KindMonthName
	KindYearIndex
	KindEvery
	KindEveryday
	KindAfter
	KindBefore
	KindSecond
	KindMinute
	KindHour
	KindDay
	KindDayInstance
	KindDayOfWeek
	KindDayOfYear
	KindWeekOfYear
	KindWeekOfMonth
	KindWeekday
	KindWeekend
	KindMonth
	KindYear
	KindBetween
	KindStart
	KindAt
	KindAnd
	KindExcept
	KindAlso
	KindFirst
	KindLast
	KindIn
	KindOf
	KindOnThe
	KindOn
	KindThrough
	KindFor
	kindCount
)

type kindSpec struct {
	name string
	re   *regexp.Regexp
}

func recognizer(expr string) *regexp.Regexp {
	re := regexp.MustCompile(expr)
	re.Longest()
	return re
}

// reWhitespace also skips vertical tabs, Unicode space separators and the
// byte order mark.
var reWhitespace = recognizer(`^[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

var kinds = [kindCount]kindSpec{
	KindNone:        {name: "none"},
	KindEOF:         {name: "end of input", re: recognizer(`^$`)},
	KindRank:        {name: "rank", re: recognizer(`^((\d+)(st|nd|rd|th)?|an|a)\b`)},
	KindTime:        {name: "time", re: recognizer(`^((([0]?[1-9]|1[0-2])(:[0-5]\d(\s)?)?(am|pm|a|p))|(([0]?\d|1\d|2[0-3]):[0-5]\d))\b`)},
	KindDayName:     {name: "day name", re: recognizer(`^((sun|mon|tue(s)?|wed(nes)?|thu(r(s)?)?|fri|sat(ur)?)(day)?(s)?)\b`)},
	KindMonthName:   {name: "month name", re: recognizer(`^(jan(uary)?|feb(ruary)?|ma(r(ch)?|y)|apr(il)?|ju(ly|ne|l|n)|aug(ust)?|oct(ober)?|(sept?|nov|dec)(ember)?)\b`)},
	KindYearIndex:   {name: "year index", re: recognizer(`^((20|19)\d\d)\b`)},
	KindEvery:       {name: "every", re: recognizer(`^every\b`)},
	KindEveryday:    {name: "everyday", re: recognizer(`^everyday\b`)},
	KindAfter:       {name: "after", re: recognizer(`^after\b`)},
	KindBefore:      {name: "before", re: recognizer(`^before\b`)},
	KindSecond:      {name: "second", re: recognizer(`^(s|sec(ond)?(s)?)\b`)},
	KindMinute:      {name: "minute", re: recognizer(`^(m|min(ute)?(s)?)\b`)},
	KindHour:        {name: "hour", re: recognizer(`^(h|hour(s)?)\b`)},
	KindDay:         {name: "day", re: recognizer(`^(day(s)?( of the month)?)\b`)},
	KindDayInstance: {name: "day instance", re: recognizer(`^day instance\b`)},
	KindDayOfWeek:   {name: "day of week", re: recognizer(`^day(s)? of the week\b`)},
	KindDayOfYear:   {name: "day of year", re: recognizer(`^day(s)? of the year\b`)},
	KindWeekOfYear:  {name: "week of year", re: recognizer(`^week(s)?( of the year)?\b`)},
	KindWeekOfMonth: {name: "week of month", re: recognizer(`^week(s)? of the month\b`)},
	KindWeekday:     {name: "weekday", re: recognizer(`^weekday(s)?\b`)},
	KindWeekend:     {name: "weekend", re: recognizer(`^weekend(s)?\b`)},
	KindMonth:       {name: "month", re: recognizer(`^month(s)?\b`)},
	KindYear:        {name: "year", re: recognizer(`^year(s)?\b`)},
	KindBetween:     {name: "between", re: recognizer(`^(between( the)?|from)\b`)},
	KindStart:       {name: "start", re: recognizer(`^(start(ing)? (at|on( the)?)?)\b`)},
	KindAt:          {name: "at", re: recognizer(`^(at\b|@)`)},
	KindAnd:         {name: "and", re: recognizer(`^(,|and\b)`)},
	KindExcept:      {name: "except", re: recognizer(`^except\b`)},
	KindAlso:        {name: "also", re: recognizer(`^also\b`)},
	KindFirst:       {name: "first", re: recognizer(`^first\b`)},
	KindLast:        {name: "last", re: recognizer(`^last\b`)},
	KindIn:          {name: "in", re: recognizer(`^in\b`)},
	KindOf:          {name: "of", re: recognizer(`^of\b`)},
	KindOnThe:       {name: "on the", re: recognizer(`^on the\b`)},
	KindOn:          {name: "on", re: recognizer(`^on\b`)},
	KindThrough:     {name: "through", re: recognizer(`^(-|to\b|through\b|thru\b|until\b|til\b)`)},
	KindFor:         {name: "for", re: recognizer(`^for\b`)},
}

func (k TokenKind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kinds[k].name
}

// match returns the length of the kind's match at the start of s, or -1.
func (k TokenKind) match(s string) int {
	if k <= KindNone || k >= kindCount {
		return -1
	}
	loc := kinds[k].re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return -1
	}
	return loc[1]
}

// PeriodKinds are the unit nouns that may follow a numeral.
var PeriodKinds = []TokenKind{
	KindSecond,
	KindMinute,
	KindHour,
	KindDayOfYear,
	KindDayOfWeek,
	KindDayInstance,
	KindDay,
	KindMonth,
	KindYear,
	KindWeekOfMonth,
	KindWeekOfYear,
}

var statementKinds = []TokenKind{
	KindEvery,
	KindAfter,
	KindBefore,
	KindOnThe,
	KindOn,
	KindOf,
	KindIn,
	KindAt,
	KindAnd,
	KindExcept,
	KindAlso,
	KindFor,
	KindDayName,
	KindEveryday,
	KindWeekday,
	KindWeekend,
	KindMonthName,
	KindTime,
	KindBetween,
	KindEOF,
}

// everyKinds start an "every" statement; all but KindEvery imply the word.
var everyKinds = map[TokenKind]bool{
	KindEvery:     true,
	KindWeekday:   true,
	KindWeekend:   true,
	KindDayName:   true,
	KindMonthName: true,
	KindTime:      true,
	KindEveryday:  true,
}

// timeKinds start a generic time expression; a year outranks a rank on the
// same digits.
var timeKinds = []TokenKind{KindDayName, KindYearIndex, KindRank, KindTime, KindMonthName}
