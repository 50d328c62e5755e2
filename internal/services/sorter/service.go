package sorter

import (
	"github.com/sirupsen/logrus"

	"bsort/internal/domain"
	"bsort/internal/render"
)

// demoSequence is the classic fixture the bare invocation sorts.
var demoSequence = domain.Sequence{64, 34, 25, 12, 22, 11, 90}

// Service runs the print, sort, print flow over a sequence.
type Service struct {
	sorter domain.Sorter
	out    domain.Renderer
	log    *logrus.Logger
}

// New returns a sorter service using the given algorithm, output renderer
// and logger.
func New(sorter domain.Sorter, out domain.Renderer, log *logrus.Logger) *Service {
	return &Service{sorter: sorter, out: out, log: log}
}

// Demo sorts a copy of the reference sequence.
func (s *Service) Demo() error {
	return s.Run(demoSequence.Clone())
}

// Run renders seq, sorts it in place, and renders the result.
func (s *Service) Run(seq domain.Sequence) error {
	if err := s.out.Line(render.BeforeLabel, seq); err != nil {
		return err
	}
	stats := s.sorter.Sort(seq)
	s.log.WithFields(logrus.Fields{
		"len":    len(seq),
		"passes": stats.Passes,
		"swaps":  stats.Swaps,
	}).Debug("sequence sorted")
	return s.out.Line(render.AfterLabel, seq)
}
