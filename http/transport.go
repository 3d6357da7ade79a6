package http

import (
	"civic-sync"
	"civic-sync/conversion"
	"civic-sync/currency"
	"civic-sync/location"
	"civic-sync/project"
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"net/http"
	"time"
)

// Session the components backing one local user session
type Session struct {
	Currency  currency.Service
	Amount    *conversion.Pipeline
	Locations location.Resolver
	Search    *location.Box
	Projects  *project.Store
}

// Server dependencies for HTTP Server functions
type Server struct {
	Session Session
	Logger  log.Logger

	// ctx outlives individual requests; debounced work scheduled by a request must not
	// be cancelled when that request completes
	ctx    context.Context
	router chi.Router
}

// NewServer constructs a valid Server. ctx bounds work that continues after a request
// has been answered.
func NewServer(ctx context.Context, s Session, logger log.Logger) *Server {
	server := &Server{
		Session: s,
		Logger:  logger,
		ctx:     ctx,
		router:  chi.NewRouter(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(s.logRequests)
	s.router.Use(chimiddleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.convert())
		r.Get("/amount", s.amount())
		r.Post("/amount", s.setAmount())
		r.Get("/locations", s.locations())
		r.Get("/search", s.search())
		r.Post("/search", s.setQuery())
		r.Post("/search/select", s.selectLocation())
		r.Get("/projects", s.projects())
		r.Post("/projects/refresh", s.refresh())
		r.Get("/projects/selected", s.selected())
		r.Post("/projects/{id}/select", s.selectProject())
	})
}

// logRequests logs every request the way the service decorators log their calls
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		defer func(begin time.Time) {
			level.Debug(s.Logger).Log(
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", chimiddleware.GetReqID(r.Context()),
				"took", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// amountRequest body of the conversion endpoints
type amountRequest struct {
	Amount   civic.Amount `json:"amount"`
	Currency string       `json:"currency"`
}

func (s *Server) decodeAmount(rw http.ResponseWriter, r *http.Request) (amountRequest, civic.Currency, bool) {
	var request amountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(rw, http.StatusBadRequest, "invalid json")
		return request, "", false
	}
	from, ok := civic.ParseCurrency(request.Currency)
	if !ok {
		writeError(rw, http.StatusBadRequest, "unknown currency")
		return request, "", false
	}
	return request, from, true
}

// convert produces HTTP handler for one-off conversions
func (s *Server) convert() http.HandlerFunc {
	type response struct {
		Amount    civic.Amount   `json:"amount"`
		Currency  civic.Currency `json:"currency"`
		Converted *civic.Amount  `json:"converted"`
		Formatted string         `json:"formatted,omitempty"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		request, from, ok := s.decodeAmount(rw, r)
		if !ok {
			return
		}

		converted, err := conversion.Convert(r.Context(), s.Session.Currency, request.Amount, from)
		if err != nil {
			// no conversion available is an answer, not a failure
			level.Warn(s.Logger).Log("msg", "conversion failed", "amount", request.Amount, "from", from, "err", err)
		}

		resp := response{Amount: request.Amount, Currency: from, Converted: converted}
		if converted != nil {
			resp.Formatted = currency.Format(civic.MonetaryAmount{Value: *converted, Currency: from.Other()})
		}
		writeJSON(rw, http.StatusOK, resp)
	}
}

type amountState struct {
	conversion.State
	Hint string `json:"hint,omitempty"`
}

// amount reports the session's amount field
func (s *Server) amount() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		state := s.Session.Amount.State()
		writeJSON(rw, http.StatusOK, amountState{State: state, Hint: state.Hint()})
	}
}

// setAmount records a keystroke in the session's amount field
func (s *Server) setAmount() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		request, from, ok := s.decodeAmount(rw, r)
		if !ok {
			return
		}
		s.Session.Amount.Set(s.ctx, request.Amount, from)
		state := s.Session.Amount.State()
		writeJSON(rw, http.StatusAccepted, amountState{State: state, Hint: state.Hint()})
	}
}

// searchResult a result as listed under a search field: the location name on the first
// line, the rest of the display name below it
type searchResult struct {
	civic.SearchResult
	Name      string `json:"name"`
	Secondary string `json:"secondary"`
}

func searchResults(results []civic.SearchResult) []searchResult {
	views := make([]searchResult, 0, len(results))
	for _, r := range results {
		views = append(views, searchResult{
			SearchResult: r,
			Name:         location.LocationName(r.DisplayName),
			Secondary:    location.Secondary(r.DisplayName),
		})
	}
	return views
}

type boxState struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
	Open    bool           `json:"open"`
	Loading bool           `json:"loading"`
}

func (s *Server) boxState() boxState {
	state := s.Session.Search.State()
	return boxState{
		Query:   state.Query,
		Results: searchResults(state.Results),
		Open:    state.Visible(),
		Loading: state.Loading,
	}
}

// locations resolves a query immediately, without the session's debounce
func (s *Server) locations() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		results, err := s.Session.Locations.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			level.Warn(s.Logger).Log("msg", "location search failed", "err", err)
			results = nil
		}
		writeJSON(rw, http.StatusOK, searchResults(results))
	}
}

func (s *Server) search() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, http.StatusOK, s.boxState())
	}
}

// setQuery records a keystroke in the session's search field
func (s *Server) setQuery() http.HandlerFunc {
	type request struct {
		Query string `json:"query"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}
		s.Session.Search.SetQuery(s.ctx, req.Query)
		writeJSON(rw, http.StatusAccepted, s.boxState())
	}
}

// selectLocation picks one of the results currently offered by the search field
func (s *Server) selectLocation() http.HandlerFunc {
	type request struct {
		PlaceID string `json:"place_id"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}
		for _, result := range s.Session.Search.State().Results {
			if result.PlaceID == req.PlaceID {
				writeJSON(rw, http.StatusOK, s.Session.Search.Select(result))
				return
			}
		}
		writeError(rw, http.StatusNotFound, "unknown place")
	}
}

type projectsResponse struct {
	Filters      civic.ProjectFilters `json:"filters"`
	Projects     []civic.Project      `json:"projects"`
	Total        int                  `json:"total"`
	Advisory     string               `json:"advisory,omitempty"`
	ExchangeRate *civic.Rate          `json:"exchange_rate"`
	Loading      bool                 `json:"loading"`
}

func (s *Server) projectsResponse() projectsResponse {
	store := s.Session.Projects
	resp := projectsResponse{
		Filters:  store.Filters(),
		Projects: store.Projects(),
		Total:    len(store.AllProjects()),
		Loading:  store.Loading(),
	}
	resp.Advisory, _ = store.Advisory()
	if rate, ok := store.ExchangeRate(); ok {
		resp.ExchangeRate = &rate
	}
	return resp
}

// projects applies any filters given in the query string and lists the filtered view
func (s *Server) projects() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var update project.FilterUpdate
		query := r.URL.Query()
		if query.Has("status") {
			status := civic.ParseStatusFilter(query.Get("status"))
			update.Status = &status
		}
		if query.Has("search") {
			search := query.Get("search")
			update.Search = &search
		}
		s.Session.Projects.UpdateFilters(update)
		writeJSON(rw, http.StatusOK, s.projectsResponse())
	}
}

// refresh refetches the project collection
func (s *Server) refresh() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		// failures are reflected in the advisory; a client going away must not count as one
		_ = s.Session.Projects.Fetch(s.ctx)
		writeJSON(rw, http.StatusOK, s.projectsResponse())
	}
}

// selected reports the selected project
func (s *Server) selected() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		p, ok := s.Session.Projects.Selected()
		if !ok {
			writeError(rw, http.StatusNotFound, "no project selected")
			return
		}
		writeJSON(rw, http.StatusOK, p)
	}
}

// selectProject selects a project from the whole collection, whatever the filters
func (s *Server) selectProject() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		for _, p := range s.Session.Projects.AllProjects() {
			if p.ID == id {
				s.Session.Projects.Select(&p)
				writeJSON(rw, http.StatusOK, p)
				return
			}
		}
		writeError(rw, http.StatusNotFound, "unknown project")
	}
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}

func writeError(rw http.ResponseWriter, status int, msg string) {
	writeJSON(rw, status, map[string]string{"error": msg})
}
