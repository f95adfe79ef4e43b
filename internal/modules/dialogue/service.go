// README: Per-turn dialogue controller; ordered branch table over fixed intents.
package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ankago/internal/ai"
	"ankago/internal/config"
	"ankago/internal/modules/convo"
	"ankago/internal/modules/jobs"
	"ankago/internal/nlp"
	"ankago/internal/types"
)

// Searcher is the consumed job search surface.
type Searcher interface {
	Search(ctx context.Context, p jobs.SearchParams) (jobs.SearchResult, error)
	GetByID(ctx context.Context, id types.ID) (*jobs.Job, error)
}

// ConversationStore is the consumed conversation persistence surface.
type ConversationStore interface {
	Get(ctx context.Context, userID types.ID) (*convo.Conversation, error)
	Append(ctx context.Context, userID types.ID, userText, replyText string, patch convo.ContextPatch) error
}

// TurnResult is what one processed message produces for the transport layer.
type TurnResult struct {
	Message string
	JobIDs  []string
	Patch   convo.ContextPatch
}

// turn is the read-only working state for one incoming message.
type turn struct {
	userID  types.ID
	text    string
	norm    string
	tokens  []string
	parsed  nlp.ParsedLocations
	filters filterSet
	cctx    convo.Context
	history []convo.Message
	first   bool
}

func (t *turn) hasContextRoute() bool {
	return t.cctx.LastOrigin != "" || t.cctx.LastDestination != ""
}

// branch is one entry of the controller's decision table. Branches are
// evaluated in declaration order and the first match wins; the order is a
// product invariant, not an implementation detail.
type branch struct {
	name   string
	match  func(t *turn) bool
	handle func(ctx context.Context, t *turn) *TurnResult
}

type Service struct {
	store    ConversationStore
	search   Searcher
	orch     *Orchestrator
	pageSize int
	log      *slog.Logger
	branches []branch
}

func NewService(store ConversationStore, search Searcher, provider ai.Provider, cfg config.DialogueConfig, log *slog.Logger) *Service {
	s := &Service{
		store:    store,
		search:   search,
		orch:     NewOrchestrator(provider, search, cfg.MaxToolIterations, log),
		pageSize: cfg.PageSize,
		log:      log,
	}
	if s.pageSize <= 0 {
		s.pageSize = 5
	}
	s.branches = []branch{
		{"canned", s.matchCanned, s.handleCanned},
		{"profanity", func(t *turn) bool { return isProfane(t.norm, t.tokens) }, s.handleProfanity},
		{"faq", func(t *turn) bool { _, ok := matchFAQ(t.norm, t.tokens); return ok }, s.handleFAQ},
		{"pagination", s.matchPagination, s.handlePagination},
		{"all_destinations", func(t *turn) bool { return matchAny(t.norm, allDestinationsPatterns) }, s.handleAllDestinations},
		{"off_topic", s.matchOffTopic, s.handleOffTopic},
		{"intra_city", s.matchIntraCity, s.handleIntraCity},
		{"search", func(t *turn) bool { return true }, s.handleSearch},
	}
	return s
}

// HandleMessage runs one dialogue turn. The context patch is persisted only
// after the reply is finalized; a cancelled turn persists nothing.
func (s *Service) HandleMessage(ctx context.Context, userID types.ID, text string) (*TurnResult, error) {
	t := &turn{userID: userID, text: text}

	conv, err := s.store.Get(ctx, userID)
	if err != nil {
		// A broken store read degrades to "no context" rather than a dead turn.
		s.log.Error("conversation load failed", "user", userID, "err", err)
		conv = nil
	}
	if conv != nil {
		t.cctx = conv.Context
		t.history = conv.Messages
	}
	t.first = conv == nil || len(conv.Messages) == 0

	t.norm = strings.TrimSpace(nlp.Normalize(text))
	t.tokens = tokenize(t.norm)
	t.parsed = nlp.Extract(text)
	t.filters = extractFilters(t.tokens)

	var result *TurnResult
	for _, br := range s.branches {
		if br.match(t) {
			s.log.Info("dialogue turn", "user", userID, "branch", br.name,
				"origin", t.parsed.Origin, "destination", t.parsed.Destination)
			result = br.handle(ctx, t)
			break
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.Append(ctx, userID, text, result.Message, result.Patch); err != nil {
		// The reply still goes out; only the analytics trail suffers.
		s.log.Error("conversation append failed", "user", userID, "err", err)
	}
	return result, nil
}

func tokenize(norm string) []string {
	raw := strings.FieldsFunc(norm, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '-' || r == '/'
	})
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if tok = nlp.CleanToken(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// ----- branch 1: canned exchanges -----

func (s *Service) matchCanned(t *turn) bool {
	if _, ok := greetingMessages[t.norm]; ok {
		return true
	}
	if _, ok := farewellMessages[t.norm]; ok {
		return true
	}
	_, ok := thanksMessages[t.norm]
	return ok
}

func (s *Service) handleCanned(ctx context.Context, t *turn) *TurnResult {
	if _, ok := greetingMessages[t.norm]; ok {
		if t.first {
			return &TurnResult{Message: replyGreetingFirst}
		}
		return &TurnResult{Message: replyGreeting}
	}
	if _, ok := farewellMessages[t.norm]; ok {
		return &TurnResult{Message: replyFarewell}
	}
	return &TurnResult{Message: replyThanks}
}

// ----- branch 2: profanity -----

func (s *Service) handleProfanity(ctx context.Context, t *turn) *TurnResult {
	return &TurnResult{
		Message: replySwearWarning,
		Patch:   convo.ContextPatch{SwearWarned: convo.SetBool(true)},
	}
}

// ----- branch 3: FAQ -----

func (s *Service) handleFAQ(ctx context.Context, t *turn) *TurnResult {
	reply, _ := matchFAQ(t.norm, t.tokens)
	return &TurnResult{Message: reply}
}

// ----- branch 4: pagination -----

func (s *Service) matchPagination(t *turn) bool {
	return isPaginationRequest(t.norm, t.tokens) && t.cctx.LastTotalCount > 0
}

func (s *Service) handlePagination(ctx context.Context, t *turn) *TurnResult {
	offset := t.cctx.LastOffset + t.cctx.LastShownCount
	if offset >= t.cctx.LastTotalCount {
		// Exhausted; no search call is made.
		return &TurnResult{Message: replyNoMore}
	}

	// Only the route carries across pages: vehicle/body/cargo filters from
	// earlier turns proved too unreliable to repeat, so they are dropped and
	// explicitly cleared below via searchPatch.
	params := jobs.SearchParams{
		Origin:      t.cctx.LastOrigin,
		Destination: t.cctx.LastDestination,
		Limit:       s.pageSize,
		Offset:      offset,
	}
	res, err := s.search.Search(ctx, params)
	if err != nil {
		return &TurnResult{Message: replySearchDown}
	}
	if len(res.Jobs) == 0 {
		return &TurnResult{Message: replyNoMore, Patch: searchPatch(params, res)}
	}
	return &TurnResult{
		Message: FormatJobs(res.Jobs, params, res.TotalCount),
		JobIDs:  jobIDs(res.Jobs),
		Patch:   searchPatch(params, res),
	}
}

// ----- branch 5: all destinations -----

func (s *Service) handleAllDestinations(ctx context.Context, t *turn) *TurnResult {
	origin := t.parsed.Origin
	district := t.parsed.OriginDistrict
	if origin == "" {
		origin = t.cctx.LastOrigin
		district = ""
	}
	if origin == "" {
		return &TurnResult{Message: replyAskOrigin}
	}

	params := jobs.SearchParams{Origin: origin, OriginDistrict: district, Limit: s.pageSize}
	res, err := s.search.Search(ctx, params)
	if err != nil {
		return &TurnResult{Message: replySearchDown}
	}
	if len(res.Jobs) == 0 {
		return &TurnResult{Message: FormatNoResults(params), Patch: searchPatch(params, res)}
	}
	return &TurnResult{
		Message: FormatJobs(res.Jobs, params, res.TotalCount),
		JobIDs:  jobIDs(res.Jobs),
		Patch:   searchPatch(params, res),
	}
}

// ----- branch 6: off topic -----

func (s *Service) matchOffTopic(t *turn) bool {
	return !t.parsed.HasAny() && !t.filters.any() && !t.hasContextRoute() && !isIntraCity(t.tokens)
}

func (s *Service) handleOffTopic(ctx context.Context, t *turn) *TurnResult {
	return &TurnResult{Message: replyNotRelated}
}

// ----- branch 7: intra-city / same province -----

func (s *Service) matchIntraCity(t *turn) bool {
	if t.parsed.SameProvince {
		return true
	}
	return isIntraCity(t.tokens) && t.parsed.HasAny()
}

func (s *Service) handleIntraCity(ctx context.Context, t *turn) *TurnResult {
	city := t.parsed.Origin
	if city == "" {
		city = t.parsed.Destination
	}

	params := jobs.SearchParams{
		Origin:              city,
		OriginDistrict:      t.parsed.OriginDistrict,
		Destination:         city,
		DestinationDistrict: t.parsed.DestinationDistrict,
		VehicleType:         t.filters.VehicleType,
		BodyType:            t.filters.BodyType,
		CargoType:           t.filters.CargoType,
		IsRefrigerated:      t.filters.IsRefrigerated,
		Limit:               s.pageSize,
	}
	res, err := s.search.Search(ctx, params)
	if err != nil {
		return &TurnResult{Message: replySearchDown}
	}
	if len(res.Jobs) > 0 {
		return &TurnResult{
			Message: FormatJobs(res.Jobs, params, res.TotalCount),
			JobIDs:  jobIDs(res.Jobs),
			Patch:   searchPatch(params, res),
		}
	}

	// True intra-city freight is rare: retry as an outbound search before
	// declaring total absence.
	interCity := params
	interCity.Destination = ""
	interCity.DestinationDistrict = ""
	interCity.OriginDistrict = ""
	res2, err := s.search.Search(ctx, interCity)
	if err != nil {
		return &TurnResult{Message: replySearchDown}
	}
	if len(res2.Jobs) == 0 {
		return &TurnResult{Message: FormatNoResults(params), Patch: searchPatch(params, res2)}
	}
	return &TurnResult{
		Message: fmt.Sprintf(intraCityPrefix, city) + FormatJobs(res2.Jobs, interCity, res2.TotalCount),
		JobIDs:  jobIDs(res2.Jobs),
		Patch:   searchPatch(interCity, res2),
	}
}

// ----- branch 8: default search via the tool orchestrator -----

func (s *Service) handleSearch(ctx context.Context, t *turn) *TurnResult {
	params := s.resolveSearchParams(t)
	if params.Origin == "" && params.Destination == "" {
		// Logistics-flavored message with no resolvable route yet.
		return &TurnResult{Message: replyAskRoute}
	}

	force := t.parsed.HasAny() || t.filters.any()
	return s.orch.Run(ctx, t.history, t.text, params, force)
}

// resolveSearchParams applies the context carryover rule: a new endpoint
// means a new search (no filter carryover, and a new origin also drops the
// stored destination), while a filter-only or partial message reuses the
// stored route. Locations are sticky, filters are not. The asymmetry is
// deliberate: repeating a stale vehicle filter surprises drivers more than
// asking again does.
func (s *Service) resolveSearchParams(t *turn) jobs.SearchParams {
	p := jobs.SearchParams{Limit: s.pageSize}

	switch {
	case t.parsed.HasOrigin() && t.parsed.Origin != t.cctx.LastOrigin:
		// Fresh search from a new origin; nothing leaks from context.
		p.Origin, p.OriginDistrict = t.parsed.Origin, t.parsed.OriginDistrict
		p.Destination, p.DestinationDistrict = t.parsed.Destination, t.parsed.DestinationDistrict
	case t.parsed.HasDestination() && t.parsed.Destination != t.cctx.LastDestination:
		// New destination; keep the stored origin if none was given.
		p.Destination, p.DestinationDistrict = t.parsed.Destination, t.parsed.DestinationDistrict
		if t.parsed.HasOrigin() {
			p.Origin, p.OriginDistrict = t.parsed.Origin, t.parsed.OriginDistrict
		} else {
			p.Origin = t.cctx.LastOrigin
		}
	default:
		// Same route, or a filter-only message: reuse stored endpoints.
		if t.parsed.HasOrigin() {
			p.Origin, p.OriginDistrict = t.parsed.Origin, t.parsed.OriginDistrict
		} else {
			p.Origin = t.cctx.LastOrigin
		}
		if t.parsed.HasDestination() {
			p.Destination, p.DestinationDistrict = t.parsed.Destination, t.parsed.DestinationDistrict
		} else {
			p.Destination = t.cctx.LastDestination
		}
	}

	p.VehicleType = t.filters.VehicleType
	p.BodyType = t.filters.BodyType
	p.CargoType = t.filters.CargoType
	p.IsRefrigerated = t.filters.IsRefrigerated
	return p
}
