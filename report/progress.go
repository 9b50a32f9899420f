package report

import (
	"fmt"

	"github.com/gosuri/uilive"
)

// Progress renders a single live-updating training status line.
type Progress struct {
	writer   *uilive.Writer
	episodes int
}

func NewProgress(episodes int) *Progress {
	w := uilive.New()
	w.Start()
	return &Progress{writer: w, episodes: episodes}
}

// Update rewrites the status line for a finished episode.
func (p *Progress) Update(episode int, epsilon, last100 float64, best, states int) {
	fmt.Fprintf(p.writer, "Ep %d/%d | eps=%.3f | avg(last100)=%.2f | best=%d | states=%d\n",
		episode+1, p.episodes, epsilon, last100, best, states)
}

func (p *Progress) Stop() {
	p.writer.Stop()
}
