package calendar

// PaceStatus compares a goal's achievement rate to the share of the year gone.
type PaceStatus int

const (
	PaceOnTrack PaceStatus = iota
	PaceAhead
	PaceBehind
	PaceExceeded
	PacePreparing
)

// paceMargin is the percentage-point band treated as on track.
const paceMargin = 5

func Pace(achievementRate, yearProgress float64) PaceStatus {
	if achievementRate >= 100 {
		return PaceExceeded
	}
	if yearProgress <= 0 {
		return PacePreparing
	}
	diff := achievementRate - yearProgress
	switch {
	case diff >= paceMargin:
		return PaceAhead
	case diff <= -paceMargin:
		return PaceBehind
	default:
		return PaceOnTrack
	}
}

func (p PaceStatus) Label() string {
	switch p {
	case PaceExceeded:
		return "超標"
	case PacePreparing:
		return "準備中"
	case PaceAhead:
		return "領先"
	case PaceBehind:
		return "落後"
	default:
		return "正常"
	}
}

func (p PaceStatus) Icon() string {
	switch p {
	case PaceExceeded:
		return "🔥"
	case PacePreparing:
		return "⏳"
	case PaceAhead:
		return "🚀"
	case PaceBehind:
		return "⚠️"
	default:
		return "✅"
	}
}

func (p PaceStatus) String() string {
	switch p {
	case PaceExceeded:
		return "exceeded"
	case PacePreparing:
		return "preparing"
	case PaceAhead:
		return "ahead"
	case PaceBehind:
		return "behind"
	default:
		return "on_track"
	}
}
