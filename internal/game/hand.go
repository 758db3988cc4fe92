package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cardroom/holdemgen/internal/gameid"
	"github.com/cardroom/holdemgen/internal/poker"
)

// ErrProviderTimeout is the substitution cause when a provider does not
// answer within the configured timeout.
var ErrProviderTimeout = errors.New("game: provider timed out")

const defaultProviderTimeout = 5 * time.Second

// SeatConfig describes one seat of the table.
type SeatConfig struct {
	Stack       int
	Personality string
	Traits      map[string]float64
	Actions     ActionProvider
	Chat        ChatProvider // nil means the seat never talks
}

// Config describes one hand to play.
type Config struct {
	Seed            int64
	Seats           []SeatConfig
	Button          int
	SmallBlind      int
	BigBlind        int
	ProviderTimeout time.Duration
	Logger          *log.Logger
	Clock           quartz.Clock
}

// Hand drives one complete hand: blinds, hole cards, up to four betting
// streets, then showdown or fold-through, producing the frozen Record.
// A Hand is single use and not safe for concurrent use; the batch runner
// gives each hand to exactly one worker.
type Hand struct {
	cfg     Config
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration

	gameID string
	seats  []*Seat
	deck   *poker.Deck
	board  []poker.Card
	ledger *Ledger
	round  *Round
	active int

	record   *Record
	foldedBy string
}

// NewHand validates the configuration and sets up the table.
func NewHand(cfg Config) (*Hand, error) {
	n := len(cfg.Seats)
	if n < 2 || n > 10 {
		return nil, fmt.Errorf("game: need 2-10 seats, got %d", n)
	}
	if cfg.Button < 0 || cfg.Button >= n {
		return nil, fmt.Errorf("game: button %d out of range for %d seats", cfg.Button, n)
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind < cfg.SmallBlind {
		return nil, fmt.Errorf("game: invalid blinds %d/%d", cfg.SmallBlind, cfg.BigBlind)
	}
	for i, sc := range cfg.Seats {
		if sc.Stack <= 0 {
			return nil, fmt.Errorf("game: seat %d has no chips", i)
		}
		if sc.Actions == nil {
			return nil, fmt.Errorf("game: seat %d has no action provider", i)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	timeout := cfg.ProviderTimeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	id := gameid.FromSeed(cfg.Seed)
	seats := make([]*Seat, n)
	players := make(map[string]PlayerInfo, n)
	for i, sc := range cfg.Seats {
		seats[i] = NewSeat(i, sc.Stack)
		seats[i].Personality = sc.Personality
		personality := sc.Personality
		if personality == "" {
			personality = "unknown"
		}
		players[seats[i].ID] = PlayerInfo{
			PersonalityType:   personality,
			PersonalityTraits: sc.Traits,
			StartingStack:     sc.Stack,
		}
	}

	return &Hand{
		cfg:     cfg,
		logger:  cfg.Logger.WithPrefix("hand"),
		clock:   cfg.Clock,
		timeout: timeout,
		gameID:  id,
		seats:   seats,
		deck:    poker.NewDeck(cfg.Seed),
		ledger:  NewLedger(n),
		round:   NewRound(n, cfg.BigBlind),
		active:  -1,
		record: &Record{
			DocumentType: "game",
			GameID:       id,
			Seed:         cfg.Seed,
			Players:      players,
			Actions:      []ActionDoc{},
			ChatMessages: []ChatDoc{},
		},
	}, nil
}

// Run plays the hand to completion and returns the frozen record. Provider
// failures are absorbed per decision; an error here means the hand itself
// is broken (deck exhausted, accounting violation) and its record is void.
func (h *Hand) Run(ctx context.Context) (*Record, error) {
	h.record.Timestamp = h.clock.Now().UTC().Format(time.RFC3339)
	h.logger.Debug("starting hand", "game_id", h.gameID, "seed", h.cfg.Seed, "seats", len(h.seats), "button", h.cfg.Button)

	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}
	if err := h.postBlinds(); err != nil {
		return nil, err
	}
	h.active = h.firstToActPreflop()

	for !h.finished() {
		if h.active == -1 || h.round.Complete(h.seats, h.cfg.Button) {
			if err := h.nextStreet(); err != nil {
				return nil, err
			}
			continue
		}
		if err := h.playDecision(ctx, h.active); err != nil {
			return nil, err
		}
		h.active = h.nextCanAct(h.active + 1)
	}

	h.resolve()
	h.logger.Debug("hand complete", "game_id", h.gameID, "pot", h.record.HandSummary.PotAmount, "winner", h.record.HandSummary.Winner)
	return h.record, nil
}

func (h *Hand) dealHoleCards() error {
	for _, s := range h.seats {
		if s.Status == StatusSittingOut {
			continue
		}
		cards, err := h.deck.Deal(2)
		if err != nil {
			return fmt.Errorf("deal hole cards for %s: %w", s.ID, err)
		}
		s.HoleCards = cards
	}
	return nil
}

// postBlinds commits the blinds without recording them as actions; the
// action log starts with the first voluntary decision.
func (h *Hand) postBlinds() error {
	n := len(h.seats)
	sb := smallBlindIndex(n, h.cfg.Button)
	bb := bigBlindIndex(n, h.cfg.Button)

	for _, post := range []struct {
		index  int
		amount int
	}{
		{sb, h.cfg.SmallBlind},
		{bb, h.cfg.BigBlind},
	} {
		seat := h.seats[post.index]
		if err := h.ledger.Commit(post.index, seat, min(post.amount, seat.Stack)); err != nil {
			return fmt.Errorf("post blinds: %w", err)
		}
		if seat.Stack == 0 {
			seat.Status = StatusAllIn
		}
	}

	// The big blind sets the bet to match even when posted short.
	h.round.CurrentBet = h.cfg.BigBlind
	return nil
}

func (h *Hand) firstToActPreflop() int {
	n := len(h.seats)
	if n == 2 {
		return h.nextCanAct(h.cfg.Button)
	}
	return h.nextCanAct((h.cfg.Button + 3) % n)
}

func (h *Hand) nextCanAct(from int) int {
	n := len(h.seats)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if h.seats[pos].CanAct() {
			return pos
		}
	}
	return -1
}

func (h *Hand) inHandCount() int {
	count := 0
	for _, s := range h.seats {
		if s.InHand() {
			count++
		}
	}
	return count
}

func (h *Hand) finished() bool {
	return h.round.Street == Showdown || h.inHandCount() <= 1
}

// nextStreet closes the current street and deals the next board cards. When
// nobody can act (all remaining seats are all-in) the caller's loop keeps
// advancing until showdown, running the board out.
func (h *Hand) nextStreet() error {
	for _, s := range h.seats {
		s.StreetBet = 0
	}
	h.round.AdvanceStreet()

	var deal int
	switch h.round.Street {
	case Flop:
		deal = 3
	case Turn, River:
		deal = 1
	case Showdown:
		return nil
	}
	cards, err := h.deck.Deal(deal)
	if err != nil {
		return fmt.Errorf("deal %s: %w", h.round.Street, err)
	}
	h.board = append(h.board, cards...)
	h.logger.Debug("street", "street", h.round.Street, "board", poker.FormatCards(h.board), "pot", h.ledger.Total())

	h.active = h.nextCanAct((h.cfg.Button + 1) % len(h.seats))
	return nil
}

// playDecision runs one decision point: snapshot, provider call, clamp,
// commit, record, optional chat.
func (h *Hand) playDecision(ctx context.Context, idx int) error {
	seat := h.seats[idx]
	sg := h.subGame(idx)

	req, err := h.decide(ctx, idx, sg)
	degraded := false
	if err != nil {
		h.logger.Warn("action provider failed, substituting safe default", "seat", seat.ID, "error", err)
		req = safeDefault(sg)
		degraded = true
	}

	act := h.round.Clamp(seat, req)
	if act != req {
		h.logger.Debug("clamped action", "seat", seat.ID,
			"requested", req.Kind, "requested_amount", req.Amount,
			"committed", act.Kind, "committed_amount", act.Amount)
	}
	if err := h.apply(idx, act); err != nil {
		return err
	}
	h.recordAction(idx, act, degraded)
	if !degraded {
		h.requestChat(ctx, idx, sg, act)
	}
	return nil
}

func (h *Hand) decide(ctx context.Context, idx int, sg SubGame) (Action, error) {
	provider := h.cfg.Seats[idx].Actions
	return provideWithTimeout(ctx, h.clock, h.timeout, func(ctx context.Context) (Action, error) {
		return provider.Decide(ctx, sg)
	})
}

// safeDefault is the substitute when a provider fails: fold facing a bet,
// otherwise check. Costs the seat nothing beyond chips already committed.
func safeDefault(sg SubGame) Action {
	if sg.ToCall > 0 {
		return Action{Kind: Fold}
	}
	return Action{Kind: Check}
}

// apply commits a clamped action to the betting state and the ledger.
func (h *Hand) apply(idx int, act Action) error {
	seat := h.seats[idx]
	h.round.MarkActed(idx)
	if h.round.Street == Preflop && idx == bigBlindIndex(len(h.seats), h.cfg.Button) {
		h.round.BBActed = true
	}

	switch act.Kind {
	case Fold:
		seat.Status = StatusFolded
		h.foldedBy = seat.ID
	case Check:
	case Call:
		if err := h.ledger.Commit(idx, seat, act.Amount); err != nil {
			return err
		}
		if seat.Stack == 0 {
			seat.Status = StatusAllIn
		}
	case Raise:
		if err := h.ledger.Commit(idx, seat, act.Amount-seat.StreetBet); err != nil {
			return err
		}
		h.round.NoteRaise(idx, act.Amount)
		if seat.Stack == 0 {
			seat.Status = StatusAllIn
		}
	}
	return nil
}

func (h *Hand) recordAction(idx int, act Action, degraded bool) {
	seat := h.seats[idx]
	seq := len(h.record.Actions)
	position := positionName(idx, h.cfg.Button, len(h.seats))
	doc := ActionDoc{
		DocumentType:    "game_action",
		GameID:          h.gameID,
		ActionID:        fmt.Sprintf("action_%s_%d", h.gameID, seq),
		Sequence:        seq,
		PlayerID:        seat.ID,
		GameStage:       h.round.Street.String(),
		Action:          act.Kind.String(),
		Amount:          act.Amount,
		PotSize:         h.ledger.Total(),
		Position:        position,
		BoardCards:      poker.FormatCards(h.board),
		TextDescription: describeAction(seat.ID, act, position, h.round.Street, h.board),
		Degraded:        degraded,
	}
	if degraded {
		h.record.Degraded = true
	}
	h.record.Actions = append(h.record.Actions, doc)
	h.logger.Debug("action", "seat", seat.ID, "action", act.Kind, "amount", act.Amount, "pot", doc.PotSize)
}

func (h *Hand) requestChat(ctx context.Context, idx int, sg SubGame, act Action) {
	provider := h.cfg.Seats[idx].Chat
	if provider == nil {
		return
	}
	line, err := provideWithTimeout(ctx, h.clock, h.timeout, func(ctx context.Context) (string, error) {
		return provider.Comment(ctx, ChatPrompt{SubGame: sg, Action: act})
	})
	if err != nil {
		h.logger.Warn("chat provider failed, omitting chat line", "seat", sg.SeatID, "error", err)
		h.record.Actions[len(h.record.Actions)-1].Degraded = true
		h.record.Degraded = true
		return
	}
	if line == "" {
		return
	}

	sentiment := LabelSentiment(line)
	associated := ActionFromMessage(line)
	seq := len(h.record.Actions) - 1
	h.record.ChatMessages = append(h.record.ChatMessages, ChatDoc{
		DocumentType:     "chat_message",
		GameID:           h.gameID,
		MessageID:        fmt.Sprintf("message_%s_%d", h.gameID, len(h.record.ChatMessages)),
		PlayerID:         sg.SeatID,
		Message:          line,
		Sentiment:        sentiment,
		AssociatedAction: associated,
		ActionSequence:   seq,
		TextDescription:  describeChat(sg.SeatID, line, sentiment, associated),
	})
}

func (h *Hand) subGame(idx int) SubGame {
	seat := h.seats[idx]
	toCall := h.round.CurrentBet - seat.StreetBet
	if toCall < 0 {
		toCall = 0
	}
	sg := SubGame{
		GameID:     h.gameID,
		Street:     h.round.Street,
		Board:      append([]poker.Card(nil), h.board...),
		SeatID:     seat.ID,
		HoleCards:  append([]poker.Card(nil), seat.HoleCards...),
		Stack:      seat.Stack,
		StreetBet:  seat.StreetBet,
		TotalBet:   seat.TotalBet,
		ToCall:     toCall,
		MinRaiseTo: h.round.CurrentBet + h.round.MinRaise,
		Pot:        h.ledger.Total(),
		Legal:      h.round.LegalKinds(seat),
	}
	for i, s := range h.seats {
		if i == idx {
			continue
		}
		sg.Opponents = append(sg.Opponents, OpponentView{
			ID:        s.ID,
			Stack:     s.Stack,
			StreetBet: s.StreetBet,
			TotalBet:  s.TotalBet,
			Status:    s.Status.String(),
		})
	}
	return sg
}

// resolve distributes the pots and freezes the record's summary.
func (h *Hand) resolve() {
	pots := h.ledger.Pots(h.seats)
	showdown := h.round.Street == Showdown && h.inHandCount() > 1

	var revealed map[string]string
	winnersOf := func(eligible []int) []int { return eligible }

	if showdown {
		ranks := make(map[int]poker.HandRank)
		revealed = make(map[string]string)
		for i, s := range h.seats {
			if !s.InHand() {
				continue
			}
			cards := append(append([]poker.Card(nil), s.HoleCards...), h.board...)
			rank, err := poker.Evaluate(cards)
			if err != nil {
				h.logger.Error("showdown evaluation failed", "seat", s.ID, "error", err)
				continue
			}
			ranks[i] = rank
			revealed[s.ID] = fmt.Sprintf("%s (%s)", poker.FormatCards(s.HoleCards), rank)
		}
		winnersOf = func(eligible []int) []int {
			var best []int
			for _, i := range eligible {
				rank, ok := ranks[i]
				if !ok {
					continue
				}
				if len(best) == 0 {
					best = []int{i}
					continue
				}
				switch rank.Compare(ranks[best[0]]) {
				case 1:
					best = []int{i}
				case 0:
					best = append(best, i)
				}
			}
			return best
		}
	}

	total := h.ledger.Total()
	awards := h.ledger.Distribute(h.seats, pots, h.cfg.Button, winnersOf)

	summary := Summary{
		DocumentType:    "hand_summary",
		GameID:          h.gameID,
		HoleCards:       make(map[string]string, len(h.seats)),
		PotAmount:       total,
		ProfitLoss:      make(map[string]int, len(h.seats)),
		ShowdownReached: showdown,
		FinalBoard:      poker.FormatCards(h.board),
		RevealedHands:   revealed,
	}
	for _, s := range h.seats {
		summary.HoleCards[s.ID] = poker.FormatCards(s.HoleCards)
		summary.ProfitLoss[s.ID] = s.Stack - s.StartingStack
	}

	seen := make(map[string]bool)
	for _, aw := range awards {
		summary.Pots = append(summary.Pots, PotDoc{Amount: aw.Amount, Winners: aw.Winners})
		for _, w := range aw.Winners {
			if !seen[w] {
				seen[w] = true
				summary.Winners = append(summary.Winners, w)
			}
		}
	}
	if len(summary.Winners) > 0 {
		summary.Winner = summary.Winners[0]
	}

	foldedBy := ""
	if !showdown {
		foldedBy = h.foldedBy
	}
	summary.TextDescription = describeSummary(h.gameID, &summary, foldedBy)
	h.record.HandSummary = summary
}

// provideWithTimeout runs one provider call against the injected clock. The
// provider goroutine is left to finish on its own after a timeout; the
// buffered channel keeps it from leaking.
func provideWithTimeout[T any](ctx context.Context, clock quartz.Clock, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	results := make(chan outcome, 1)
	go func() {
		v, err := call(ctx)
		results <- outcome{value: v, err: err}
	}()

	timedOut := make(chan struct{})
	timer := clock.AfterFunc(timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	var zero T
	select {
	case r := <-results:
		return r.value, r.err
	case <-timedOut:
		return zero, ErrProviderTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
