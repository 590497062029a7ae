package elicit

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// ErrInputClosed reports that the input stream ended while a prompt
// was still waiting for a valid answer.
var ErrInputClosed = errors.New("elicitation input closed")

// #region player
// Player performs side-effecting playback of a trajectory so the user
// can judge it. Rendering is a collaborator concern, not core logic.
type Player interface {
	Play(t trajectory.Trajectory)
}

// TextPlayer is a minimal Player that prints a one-line trajectory
// summary. Used by the CLI; real deployments plug in a renderer.
type TextPlayer struct {
	Out io.Writer
}

func (p TextPlayer) Play(t trajectory.Trajectory) {
	fmt.Fprintf(p.Out, "  trajectory %s: %d steps, %d features\n", t.ID, t.Len(), len(t.Features))
}
// #endregion player

// #region session
// Session runs the line-oriented prompt loop over an input/output
// pair. Invalid input is re-prompted indefinitely; the only way a
// prompt fails is the input stream ending.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	player  Player
	retries int
	raw     []string
}

// NewSession builds a session. player may be nil, in which case slate
// items are announced but not played.
func NewSession(in io.Reader, out io.Writer, player Player) *Session {
	return &Session{in: bufio.NewScanner(in), out: out, player: player}
}

// Retries returns the number of invalid answers absorbed since the
// last Reset.
func (s *Session) Retries() int { return s.retries }

// RawInputs returns every line read since the last Reset, valid or
// not. Kept for provenance logging.
func (s *Session) RawInputs() []string {
	return append([]string(nil), s.raw...)
}

// Reset clears the retry and raw-input counters before a new prompt.
func (s *Session) Reset() {
	s.retries = 0
	s.raw = nil
}

// Prompt writes a prompt and reads a single line. Exposed so a REPL
// can share the session's input stream with the elicitation loops.
func (s *Session) Prompt(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.readLine()
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	line := s.in.Text()
	s.raw = append(s.raw, line)
	return line, nil
}

func (s *Session) playSlate(slate trajectory.Set) error {
	for i := 0; i < slate.Size(); i++ {
		fmt.Fprintf(s.out, "Playing trajectory #%d\n", i)
		t, err := slate.Get(i)
		if err != nil {
			return err
		}
		if s.player != nil {
			s.player.Play(t)
		}
	}
	return nil
}
// #endregion session

// #region preference
// Preference plays the slate and prompts until a valid index in
// [0, K) is entered. Returns the chosen index.
func (s *Session) Preference(q *query.PreferenceQuery) (int, error) {
	s.Reset()
	if err := s.playSlate(q.Slate()); err != nil {
		return 0, err
	}
	for {
		fmt.Fprintf(s.out, "Which trajectory is the best? Enter a number: [0-%d]: ", q.K()-1)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, err := ParseChoice(line, q.ResponseSet())
		if err != nil {
			s.retries++
			continue
		}
		return v, nil
	}
}
// #endregion preference

// #region weak-comparison
// WeakComparison plays the pair and prompts until one of -1, 0, 1 is
// entered.
func (s *Session) WeakComparison(q *query.WeakComparisonQuery) (int, error) {
	s.Reset()
	if err := s.playSlate(q.Slate()); err != nil {
		return 0, err
	}
	for {
		fmt.Fprint(s.out, `Which trajectory is the best? Enter a number (-1 for "About Equal"): `)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, err := ParseComparison(line)
		if err != nil {
			s.retries++
			continue
		}
		return v, nil
	}
}
// #endregion weak-comparison

// #region full-ranking
// FullRanking plays the slate and prompts for each rank position from
// most-preferred downward. Duplicate selections are rejected with a
// reminder; after K-1 selections the last remaining index is appended
// without a prompt. Returns the full permutation.
func (s *Session) FullRanking(q *query.FullRankingQuery) ([]int, error) {
	s.Reset()
	if err := s.playSlate(q.Slate()); err != nil {
		return nil, err
	}
	k := q.K()
	response := make([]int, 0, k)
	for rank := 1; rank < k; rank++ {
		for {
			fmt.Fprintf(s.out, "Which trajectory is your #%d favorite? Enter a number [0-%d]: ", rank, k-1)
			line, err := s.readLine()
			if err != nil {
				return nil, err
			}
			v, err := ParseRank(line, k, response)
			if errors.Is(err, ErrDuplicateRank) {
				fmt.Fprintf(s.out, "You have already chosen trajectory %s before!\n", line)
				s.retries++
				continue
			}
			if err != nil {
				s.retries++
				continue
			}
			response = append(response, v)
			break
		}
	}
	// The last slot is forced: exactly one index remains unchosen.
	chosen := make([]bool, k)
	for _, v := range response {
		chosen[v] = true
	}
	for v := 0; v < k; v++ {
		if !chosen[v] {
			response = append(response, v)
			break
		}
	}
	return response, nil
}
// #endregion full-ranking
