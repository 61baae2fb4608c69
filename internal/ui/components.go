package ui

import (
	"fmt"

	"github.com/olivier-w/waveview/internal/util"
	"github.com/olivier-w/waveview/internal/waveview"
)

func renderStatus(v *waveview.View) string {
	icon, state := "❚❚", "paused"
	switch {
	case !v.Visible():
		icon, state = "○", "hidden"
	case v.Running():
		icon, state = "▶", "running"
	}

	s := runningStyle.Render(fmt.Sprintf("%s  %s", icon, state))
	s += statusStyle.Render(fmt.Sprintf("  %d bars  %s/%s  %s  %s  min %.2f",
		v.BarCount(),
		util.FormatMillis(v.Duration()),
		util.FormatMillis(v.Delay()),
		v.Gravity(),
		v.RenderMode(),
		v.MinRatio(),
	))
	return s
}

func formatElapsed(v *waveview.View) string {
	return util.FormatDuration(v.Elapsed())
}
