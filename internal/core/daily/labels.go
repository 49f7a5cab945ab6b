package daily

import (
	"time"

	"golang.org/x/text/language"
)

type dayLabels struct {
	dateLayout string
	weekdays   [7]string
}

var (
	englishLabels = dayLabels{
		dateLayout: "01/02/2006",
		weekdays:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}
	chineseLabels = dayLabels{
		dateLayout: "2006/01/02",
		weekdays:   [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
	}
)

// labelsFor picks the date format for a locale; anything but Chinese is English
func labelsFor(tag language.Tag) dayLabels {
	base, _ := tag.Base()
	if base.String() == "zh" {
		return chineseLabels
	}
	return englishLabels
}

func (l dayLabels) date(t time.Time) string {
	return t.Format(l.dateLayout)
}

func (l dayLabels) weekday(t time.Time) string {
	return l.weekdays[t.Weekday()]
}
