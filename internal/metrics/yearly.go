package metrics

// YearlyRow regroups one calendar year of the series: the ordered monthly
// values per raw metric (shorter than 12 for partial years) plus the year's
// closing net subscriber figure.
type YearlyRow struct {
	Year              int
	SubscribersGained []int64
	SubscribersLost   []int64
	Views             []int64
	WatchHours        []int64
	Likes             []int64
	Shares            []int64
	Comments          []int64
	NetSubscribers    int64
}

// MetricValues returns the year's monthly sequence for a raw metric.
func (r YearlyRow) MetricValues(m Metric) []int64 {
	switch m {
	case SubscribersGained:
		return r.SubscribersGained
	case SubscribersLost:
		return r.SubscribersLost
	case Views:
		return r.Views
	case WatchHours:
		return r.WatchHours
	case Likes:
		return r.Likes
	case Shares:
		return r.Shares
	case Comments:
		return r.Comments
	default:
		return nil
	}
}

// ReshapeByYear groups the series by calendar year, in year order. Net
// subscribers carries only the last month's value within each year, not a
// sum over the year.
func ReshapeByYear(s Series) []YearlyRow {
	years := make([]YearlyRow, 0, len(s)/12+1)

	for _, row := range s {
		year := row.Date.UTC().Year()
		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, YearlyRow{Year: year})
		}

		current := &years[len(years)-1]
		current.SubscribersGained = append(current.SubscribersGained, row.SubscribersGained)
		current.SubscribersLost = append(current.SubscribersLost, row.SubscribersLost)
		current.Views = append(current.Views, row.Views)
		current.WatchHours = append(current.WatchHours, row.WatchHours)
		current.Likes = append(current.Likes, row.Likes)
		current.Shares = append(current.Shares, row.Shares)
		current.Comments = append(current.Comments, row.Comments)
		current.NetSubscribers = row.NetSubscribers
	}

	return years
}
