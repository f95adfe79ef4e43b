package dialogue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"ankago/internal/ai"
	"ankago/internal/modules/convo"
	"ankago/internal/modules/jobs"
	"ankago/internal/types"
)

type fakeProvider struct {
	reqs  []ai.Request
	comps []*ai.Completion
	err   error
}

func (p *fakeProvider) Complete(ctx context.Context, req ai.Request) (*ai.Completion, error) {
	p.reqs = append(p.reqs, req)
	if p.err != nil {
		return nil, p.err
	}
	i := len(p.reqs) - 1
	if i >= len(p.comps) {
		i = len(p.comps) - 1
	}
	return p.comps[i], nil
}

type fakeSearcher struct {
	calls   []jobs.SearchParams
	results []jobs.SearchResult
	err     error
	byID    map[types.ID]*jobs.Job
}

func (f *fakeSearcher) Search(ctx context.Context, p jobs.SearchParams) (jobs.SearchResult, error) {
	f.calls = append(f.calls, p)
	if f.err != nil {
		return jobs.SearchResult{}, f.err
	}
	if len(f.results) == 0 {
		return jobs.SearchResult{}, nil
	}
	i := len(f.calls) - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i], nil
}

func (f *fakeSearcher) GetByID(ctx context.Context, id types.ID) (*jobs.Job, error) {
	j, ok := f.byID[id]
	if !ok {
		return nil, jobs.ErrNotFound
	}
	return j, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleJob(id types.ID) jobs.Job {
	return jobs.Job{
		ID:                  id,
		OriginProvince:      "Kayseri",
		DestinationProvince: "Istanbul",
		WeightTons:          20,
		ContactPhone:        "05001112233",
	}
}

func TestRunForcesSearchToolOnFirstCall(t *testing.T) {
	provider := &fakeProvider{comps: []*ai.Completion{
		{ToolCalls: []ai.ToolCall{{Name: toolSearchJobs}}},
	}}
	search := &fakeSearcher{results: []jobs.SearchResult{
		{Jobs: []jobs.Job{sampleJob("j1")}, TotalCount: 1},
	}}
	o := NewOrchestrator(provider, search, 4, testLogger())

	params := jobs.SearchParams{Origin: "Kayseri", Destination: "Istanbul", Limit: 5}
	res := o.Run(context.Background(), nil, "kayseriden istanbula yuk var mi", params, true)

	if len(provider.reqs) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(provider.reqs))
	}
	if provider.reqs[0].ForceTool != toolSearchJobs {
		t.Errorf("ForceTool = %q, want %q", provider.reqs[0].ForceTool, toolSearchJobs)
	}
	if !strings.HasPrefix(res.Message, "1 yuk buldum abi:") {
		t.Errorf("reply not produced by formatter: %q", res.Message)
	}
	if len(res.JobIDs) != 1 || res.JobIDs[0] != "j1" {
		t.Errorf("JobIDs = %v, want [j1]", res.JobIDs)
	}
}

func TestRunSearchShortCircuitsModelText(t *testing.T) {
	// The model answers text alongside the tool call; the text must never
	// reach the user once a search has run.
	provider := &fakeProvider{comps: []*ai.Completion{
		{Text: "Kayseri'den Istanbul'a harika yukler var!", ToolCalls: []ai.ToolCall{{Name: toolSearchJobs}}},
	}}
	search := &fakeSearcher{results: []jobs.SearchResult{
		{Jobs: []jobs.Job{sampleJob("j1")}, TotalCount: 1},
	}}
	o := NewOrchestrator(provider, search, 4, testLogger())

	res := o.Run(context.Background(), nil, "kayseriden istanbula", jobs.SearchParams{Origin: "Kayseri", Limit: 5}, true)

	if strings.Contains(res.Message, "harika") {
		t.Errorf("model text leaked into reply: %q", res.Message)
	}
	if len(provider.reqs) != 1 {
		t.Errorf("provider calls = %d, want 1 (loop must stop after search)", len(provider.reqs))
	}
}

func TestRunZeroResultsUsesNoResultsReply(t *testing.T) {
	provider := &fakeProvider{comps: []*ai.Completion{
		{ToolCalls: []ai.ToolCall{{Name: toolSearchJobs}}},
	}}
	search := &fakeSearcher{}
	o := NewOrchestrator(provider, search, 4, testLogger())

	params := jobs.SearchParams{Origin: "Mardin", Destination: "Van", IsRefrigerated: true, Limit: 5}
	res := o.Run(context.Background(), nil, "mardinden vana frigo", params, true)

	if !strings.Contains(res.Message, "Mardin - Van arasi, frigo") {
		t.Errorf("empty-result reply must name the filters: %q", res.Message)
	}
	if len(res.JobIDs) != 0 {
		t.Errorf("JobIDs = %v, want none", res.JobIDs)
	}
}

func TestRunPlainTextWhenNoToolCalled(t *testing.T) {
	provider := &fakeProvider{comps: []*ai.Completion{{Text: "Tabii abi, sorabilirsin."}}}
	o := NewOrchestrator(provider, &fakeSearcher{}, 4, testLogger())

	res := o.Run(context.Background(), nil, "bir sey sorabilir miyim", jobs.SearchParams{}, false)

	if res.Message != "Tabii abi, sorabilirsin." {
		t.Errorf("Message = %q", res.Message)
	}
	if provider.reqs[0].ForceTool != "" {
		t.Errorf("unforced turn must not set ForceTool, got %q", provider.reqs[0].ForceTool)
	}
}

func TestRunJobDetailLoop(t *testing.T) {
	provider := &fakeProvider{comps: []*ai.Completion{
		{ToolCalls: []ai.ToolCall{{Name: toolGetJobDetails, Args: map[string]any{"job_id": "j7"}}}},
		{Text: "Ilanin detayi yukarida abi."},
	}}
	job := sampleJob("j7")
	search := &fakeSearcher{byID: map[types.ID]*jobs.Job{"j7": &job}}
	o := NewOrchestrator(provider, search, 4, testLogger())

	res := o.Run(context.Background(), nil, "ilk ilanin detayi", jobs.SearchParams{}, false)

	if len(provider.reqs) != 2 {
		t.Fatalf("provider calls = %d, want 2", len(provider.reqs))
	}
	second := provider.reqs[1].Messages
	last := second[len(second)-1]
	if last.Role != ai.RoleTool || last.ToolName != toolGetJobDetails {
		t.Fatalf("tool result not fed back, last message = %+v", last)
	}
	if want := formatJobLine(job); last.ToolResult != want {
		t.Errorf("ToolResult = %q, want %q", last.ToolResult, want)
	}
	if res.Message != "Ilanin detayi yukarida abi." {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestRunJobDetailNotFound(t *testing.T) {
	provider := &fakeProvider{comps: []*ai.Completion{
		{ToolCalls: []ai.ToolCall{{Name: toolGetJobDetails, Args: map[string]any{"job_id": "nope"}}}},
		{Text: "O ilan kalkmis abi."},
	}}
	o := NewOrchestrator(provider, &fakeSearcher{}, 4, testLogger())

	o.Run(context.Background(), nil, "detay", jobs.SearchParams{}, false)

	last := provider.reqs[1].Messages[len(provider.reqs[1].Messages)-1]
	if last.ToolResult != "ilan bulunamadi" {
		t.Errorf("ToolResult = %q, want %q", last.ToolResult, "ilan bulunamadi")
	}
}

func TestRunIterationCap(t *testing.T) {
	job := sampleJob("j1")
	provider := &fakeProvider{comps: []*ai.Completion{
		{ToolCalls: []ai.ToolCall{{Name: toolGetJobDetails, Args: map[string]any{"job_id": "j1"}}}},
	}}
	search := &fakeSearcher{byID: map[types.ID]*jobs.Job{"j1": &job}}
	o := NewOrchestrator(provider, search, 2, testLogger())

	res := o.Run(context.Background(), nil, "detay", jobs.SearchParams{}, false)

	if len(provider.reqs) != 2 {
		t.Errorf("provider calls = %d, want 2", len(provider.reqs))
	}
	if res.Message != replyAIDown {
		t.Errorf("Message = %q, want fallback", res.Message)
	}
}

func TestRunProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream 503")}
	o := NewOrchestrator(provider, &fakeSearcher{}, 4, testLogger())

	res := o.Run(context.Background(), nil, "selamlar", jobs.SearchParams{}, false)
	if res.Message != replyAIDown {
		t.Errorf("Message = %q, want %q", res.Message, replyAIDown)
	}
}

func TestRunSearchFailure(t *testing.T) {
	provider := &fakeProvider{comps: []*ai.Completion{
		{ToolCalls: []ai.ToolCall{{Name: toolSearchJobs}}},
	}}
	search := &fakeSearcher{err: errors.New("db down")}
	o := NewOrchestrator(provider, search, 4, testLogger())

	res := o.Run(context.Background(), nil, "ankaradan izmire", jobs.SearchParams{Origin: "Ankara"}, true)
	if res.Message != replySearchDown {
		t.Errorf("Message = %q, want %q", res.Message, replySearchDown)
	}
}

func TestMergeSearchArgsParserWins(t *testing.T) {
	params := jobs.SearchParams{Origin: "Kayseri", Limit: 5}
	call := ai.ToolCall{Name: toolSearchJobs, Args: map[string]any{
		"origin":          "Konya",
		"destination":     "Istanbul",
		"vehicle_type":    "TIR",
		"is_refrigerated": true,
	}}

	got := mergeSearchArgs(params, call)

	if got.Origin != "Kayseri" {
		t.Errorf("parsed origin must win, got %q", got.Origin)
	}
	if got.Destination != "Istanbul" || got.VehicleType != "TIR" || !got.IsRefrigerated {
		t.Errorf("model args must fill gaps, got %+v", got)
	}
}

func TestSearchPatchOverwritesEverything(t *testing.T) {
	prev := convo.Context{
		LastOrigin:         "Ankara",
		LastDestination:    "Izmir",
		LastVehicleType:    jobs.VehicleTIR,
		LastIsRefrigerated: true,
		LastTotalCount:     40,
		LastOffset:         10,
		LastShownCount:     5,
		LastJobIDs:         []string{"old"},
	}
	params := jobs.SearchParams{Origin: "Konya", Limit: 5}
	res := jobs.SearchResult{Jobs: []jobs.Job{sampleJob("new")}, TotalCount: 1}

	got := searchPatch(params, res).ApplyTo(prev)

	if got.LastOrigin != "Konya" || got.LastDestination != "" {
		t.Errorf("route not fully restated: %+v", got)
	}
	if got.LastVehicleType != "" || got.LastIsRefrigerated {
		t.Errorf("stale filters survived: %+v", got)
	}
	if got.LastTotalCount != 1 || got.LastOffset != 0 || got.LastShownCount != 1 {
		t.Errorf("pagination state not restated: %+v", got)
	}
	if len(got.LastJobIDs) != 1 || got.LastJobIDs[0] != "new" {
		t.Errorf("LastJobIDs = %v", got.LastJobIDs)
	}
}

func TestHistoryToAITruncates(t *testing.T) {
	var history []convo.Message
	for i := 0; i < 10; i++ {
		role := convo.RoleUser
		if i%2 == 1 {
			role = convo.RoleAssistant
		}
		history = append(history, convo.Message{Role: role, Content: strings.Repeat("m", i+1)})
	}

	msgs := historyToAI(history)
	if len(msgs) != historyLimit {
		t.Fatalf("len = %d, want %d", len(msgs), historyLimit)
	}
	if msgs[len(msgs)-1].Content != strings.Repeat("m", 10) {
		t.Errorf("truncation must keep the most recent messages")
	}
}
