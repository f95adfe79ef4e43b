// README: Bounded tool-calling loop against the completion service.
package dialogue

import (
	"context"
	"errors"
	"log/slog"

	"ankago/internal/ai"
	"ankago/internal/modules/convo"
	"ankago/internal/modules/jobs"
	"ankago/internal/types"
)

const (
	toolSearchJobs    = "search_jobs"
	toolGetJobDetails = "get_job_details"

	// historyLimit is how many trailing conversation messages go upstream.
	historyLimit = 6
)

const aiSystemPrompt = `Sen AnkaGo'nun Turk kamyon soforleri icin yuk bulma asistanisin.
Soforler kisa, gunluk Turkce yazar. Samimi ve kisa cevap ver, "abi" diye hitap et.
Yuk aramak icin HER ZAMAN search_jobs aracini kullan; asla kafandan yuk uydurma,
asla aramadan "yuk yok" deme. Ilan detayi sorulursa get_job_details kullan.
Konu yuk tasimaciligi disina cikarsa kibarca yuk aramaya yonlendir.`

// Orchestrator wraps the completion service. Its one job besides relaying:
// when the deterministic parser found a route, the first model turn is forced
// to call search_jobs, and a produced search result short-circuits the loop
// so the user-facing text comes from the formatter, never from the model.
type Orchestrator struct {
	provider ai.Provider
	search   Searcher
	maxIters int
	log      *slog.Logger
}

func NewOrchestrator(provider ai.Provider, search Searcher, maxIters int, log *slog.Logger) *Orchestrator {
	if maxIters <= 0 {
		maxIters = 4
	}
	return &Orchestrator{provider: provider, search: search, maxIters: maxIters, log: log}
}

func toolSpecs() []ai.ToolSpec {
	return []ai.ToolSpec{
		{
			Name:        toolSearchJobs,
			Description: "Yuk ilanlarini arar. Sehir isimleri Turkce il adidir.",
			Parameters: map[string]ai.ParamSpec{
				"origin":          {Type: "string", Description: "Yukleme ili"},
				"destination":     {Type: "string", Description: "Teslim ili"},
				"vehicle_type":    {Type: "string", Enum: []string{jobs.VehicleTIR, jobs.VehicleKamyon, jobs.VehicleKamyonet}},
				"body_type":       {Type: "string", Enum: []string{jobs.BodyAcik, jobs.BodyKapali, jobs.BodyTenteli, jobs.BodyDamperli}},
				"cargo_type":      {Type: "string", Description: "Yuk tipi, ornegin parsiyel"},
				"is_refrigerated": {Type: "boolean", Description: "Frigorifik sart mi"},
			},
		},
		{
			Name:        toolGetJobDetails,
			Description: "Tek bir yuk ilaninin detayini getirir.",
			Parameters: map[string]ai.ParamSpec{
				"job_id": {Type: "string", Description: "Ilan kimligi"},
			},
			Required: []string{"job_id"},
		},
	}
}

// Run executes the tool loop for one turn. params carries the
// deterministically extracted search filters; they are authoritative and
// override whatever the model puts in its tool call.
func (o *Orchestrator) Run(ctx context.Context, history []convo.Message, userText string, params jobs.SearchParams, force bool) *TurnResult {
	msgs := historyToAI(history)
	msgs = append(msgs, ai.Message{Role: ai.RoleUser, Content: userText})

	forceTool := ""
	if force {
		forceTool = toolSearchJobs
	}

	for i := 0; i < o.maxIters; i++ {
		comp, err := o.provider.Complete(ctx, ai.Request{
			System:    aiSystemPrompt,
			Messages:  msgs,
			Tools:     toolSpecs(),
			ForceTool: forceTool,
		})
		if err != nil {
			o.log.Error("completion failed", "err", err, "iteration", i)
			return &TurnResult{Message: replyAIDown}
		}
		forceTool = "" // only the first turn is forced

		call, ok := firstToolCall(comp)
		if !ok {
			if comp.Text == "" {
				return &TurnResult{Message: replyAIDown}
			}
			return &TurnResult{Message: comp.Text}
		}

		switch call.Name {
		case toolSearchJobs:
			return o.runSearch(ctx, mergeSearchArgs(params, call))
		case toolGetJobDetails:
			result := o.lookupJob(ctx, call)
			msgs = append(msgs,
				ai.Message{Role: ai.RoleAssistant, ToolCalls: []ai.ToolCall{call}},
				ai.Message{Role: ai.RoleTool, ToolName: call.Name, ToolResult: result},
			)
		default:
			o.log.Warn("model requested unknown tool", "tool", call.Name)
			msgs = append(msgs,
				ai.Message{Role: ai.RoleAssistant, ToolCalls: []ai.ToolCall{call}},
				ai.Message{Role: ai.RoleTool, ToolName: call.Name, ToolResult: "bilinmeyen arac"},
			)
		}
	}

	o.log.Warn("tool loop exhausted", "maxIters", o.maxIters)
	return &TurnResult{Message: replyAIDown}
}

// runSearch executes the search tool and short-circuits the loop: the reply
// text is built by the formatter so the model cannot fabricate job data.
func (o *Orchestrator) runSearch(ctx context.Context, params jobs.SearchParams) *TurnResult {
	res, err := o.search.Search(ctx, params)
	if err != nil {
		o.log.Error("search tool failed", "err", err)
		return &TurnResult{Message: replySearchDown}
	}

	patch := searchPatch(params, res)
	if len(res.Jobs) == 0 {
		return &TurnResult{Message: FormatNoResults(params), Patch: patch}
	}
	return &TurnResult{
		Message: FormatJobs(res.Jobs, params, res.TotalCount),
		JobIDs:  jobIDs(res.Jobs),
		Patch:   patch,
	}
}

func (o *Orchestrator) lookupJob(ctx context.Context, call ai.ToolCall) string {
	id := call.StringArg("job_id")
	if id == "" {
		return "ilan kimligi eksik"
	}
	job, err := o.search.GetByID(ctx, types.ID(id))
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return "ilan bulunamadi"
		}
		o.log.Error("job lookup failed", "id", id, "err", err)
		return "ilan bilgisine ulasilamadi"
	}
	return formatJobLine(*job)
}

// mergeSearchArgs overlays model-provided arguments onto the parser's
// params. Parsed fields win; the model only fills gaps.
func mergeSearchArgs(params jobs.SearchParams, call ai.ToolCall) jobs.SearchParams {
	if params.Origin == "" {
		params.Origin = call.StringArg("origin")
	}
	if params.Destination == "" {
		params.Destination = call.StringArg("destination")
	}
	if params.VehicleType == "" {
		params.VehicleType = call.StringArg("vehicle_type")
	}
	if params.BodyType == "" {
		params.BodyType = call.StringArg("body_type")
	}
	if params.CargoType == "" {
		params.CargoType = call.StringArg("cargo_type")
	}
	if !params.IsRefrigerated {
		params.IsRefrigerated = call.BoolArg("is_refrigerated")
	}
	return params
}

func firstToolCall(comp *ai.Completion) (ai.ToolCall, bool) {
	if len(comp.ToolCalls) == 0 {
		return ai.ToolCall{}, false
	}
	return comp.ToolCalls[0], true
}

func historyToAI(history []convo.Message) []ai.Message {
	start := 0
	if len(history) > historyLimit {
		start = len(history) - historyLimit
	}
	msgs := make([]ai.Message, 0, historyLimit+1)
	for _, m := range history[start:] {
		role := ai.RoleUser
		if m.Role == convo.RoleAssistant {
			role = ai.RoleAssistant
		}
		if m.Content == "" {
			continue
		}
		msgs = append(msgs, ai.Message{Role: role, Content: m.Content})
	}
	return msgs
}

func jobIDs(list []jobs.Job) []string {
	ids := make([]string, len(list))
	for i, j := range list {
		ids[i] = string(j.ID)
	}
	return ids
}

// searchPatch restates the whole search scope after any executed search, so
// no field is ever left implicitly stale: unset filters become explicit
// clears via the empty-value constructors.
func searchPatch(p jobs.SearchParams, res jobs.SearchResult) convo.ContextPatch {
	return convo.ContextPatch{
		Origin:         convo.SetString(p.Origin),
		Destination:    convo.SetString(p.Destination),
		VehicleType:    convo.SetString(p.VehicleType),
		BodyType:       convo.SetString(p.BodyType),
		CargoType:      convo.SetString(p.CargoType),
		IsRefrigerated: convo.SetBool(p.IsRefrigerated),
		TotalCount:     convo.SetInt(res.TotalCount),
		Offset:         convo.SetInt(p.Offset),
		ShownCount:     convo.SetInt(len(res.Jobs)),
		JobIDs:         convo.SetStrings(jobIDs(res.Jobs)),
	}
}
