package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

const (
	// promptPrefix marks component custom IDs owned by game prompts
	promptPrefix = "imaginarium"

	// promptWrite is the choice of the button that opens the association modal
	promptWrite = "write"

	// associationInputID is the custom ID of the modal's text input
	associationInputID = "association"
)

var (
	ErrUnknownPrompt  = errors.New("this prompt has expired")
	ErrNotYourPrompt  = errors.New("this prompt belongs to another player")
	ErrInvalidChoice  = errors.New("this choice is not available")
	ErrMalformedInput = errors.New("malformed prompt input")
	ErrNoChoices      = errors.New("there is nothing to choose from")
)

// answer is a player's reply to a prompt: a card number or a text
type answer struct {
	choice int
	text   string
}

type prompt struct {
	userID  string
	choices map[int]bool
	answers chan answer
}

// promptRegistry routes button clicks and modal submits to the hook waiting
// for them
type promptRegistry struct {
	mu      sync.Mutex
	pending map[string]*prompt
}

func newPromptRegistry() *promptRegistry {
	return &promptRegistry{
		pending: make(map[string]*prompt),
	}
}

// open registers a prompt for userID. An empty choices list accepts text.
func (r *promptRegistry) open(promptID, userID string, choices []int) <-chan answer {
	p := &prompt{
		userID:  userID,
		choices: make(map[int]bool, len(choices)),
		answers: make(chan answer, 1),
	}
	for _, c := range choices {
		p.choices[c] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[promptID] = p
	return p.answers
}

func (r *promptRegistry) close(promptID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, promptID)
}

// answer delivers a reply. Only the first reply to a prompt is kept.
func (r *promptRegistry) answer(promptID, userID string, a answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[promptID]
	if !ok {
		return ErrUnknownPrompt
	}
	if p.userID != userID {
		return ErrNotYourPrompt
	}
	if len(p.choices) > 0 && !p.choices[a.choice] {
		return ErrInvalidChoice
	}

	delete(r.pending, promptID)
	p.answers <- a
	return nil
}

// owner returns the player a prompt is waiting for
func (r *promptRegistry) owner(promptID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[promptID]
	if !ok {
		return "", false
	}
	return p.userID, true
}

// promptCustomID builds "imaginarium:<promptID>:<choice>"
func promptCustomID(promptID, choice string) string {
	return strings.Join([]string{promptPrefix, promptID, choice}, ":")
}

func isPromptCustomID(customID string) bool {
	return strings.HasPrefix(customID, promptPrefix+":")
}

// parsePromptCustomID splits a prompt custom ID into the prompt ID and the
// raw choice
func parsePromptCustomID(customID string) (promptID, choice string, err error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != promptPrefix || parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedInput, customID)
	}
	return parts[1], parts[2], nil
}

func parseChoice(choice string) (int, error) {
	n, err := strconv.Atoi(choice)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, choice)
	}
	return n, nil
}
