package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/graph"
	"github.com/patchpilot/patchpilot/pkg/models"
	"github.com/patchpilot/patchpilot/pkg/services"
)

// TaskStore is the slice of the task service the API needs.
type TaskStore interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*services.CreateResult, error)
	GetTask(ctx context.Context, id uuid.UUID) (*ent.Task, error)
	ListTasks(ctx context.Context, filters models.TaskFilters) ([]*ent.Task, error)
	Children(ctx context.Context, parentID uuid.UUID) ([]*ent.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.Status, upd services.StatusUpdate) (*ent.Task, error)
	RepoEnabled(ctx context.Context, repo models.RepoRef) (bool, error)
}

// CheckpointLister reads checkpoint history. Satisfied by
// services.CheckpointService.
type CheckpointLister interface {
	List(ctx context.Context, taskID uuid.UUID) ([]*ent.Checkpoint, error)
}

// OrchestrationReader reads a task's subtask plan for the detail view.
// Satisfied by services.MemoryService.
type OrchestrationReader interface {
	Orchestration(ctx context.Context, taskID uuid.UUID) (*models.OrchestrationState, error)
}

// --- webhook ingestion ---

type webhookHandlers struct {
	store        TaskStore
	maxAttempts  int
	triggerLabel string
	logger       *slog.Logger
}

// webhookPayload is the subset of the issue event we consume. The shape
// follows GitHub's issue webhooks; other sources post the same fields.
type webhookPayload struct {
	Action string `json:"action"`
	Issue  struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
	} `json:"issue"`
	// Label is the label applied by a "labeled" action.
	Label struct {
		Name string `json:"name"`
	} `json:"label"`
	Repository struct {
		FullName string `json:"full_name"`
		Owner    struct {
			Login string `json:"login"`
		} `json:"owner"`
		Name string `json:"name"`
	} `json:"repository"`
}

// hasLabel reports whether the issue carries the label, either on the issue
// itself or as the label just applied.
func (p *webhookPayload) hasLabel(name string) bool {
	if p.Label.Name == name {
		return true
	}
	for _, l := range p.Issue.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// triggerActions are the issue actions that start processing.
var triggerActions = map[string]bool{
	"opened":   true,
	"reopened": true,
	"labeled":  true,
}

// handle ingests one issue webhook. Idempotent: re-delivery of an event for
// an in-flight task answers {triggered: false} with the reason instead of
// erroring.
func (h *webhookHandlers) handle(c *gin.Context) {
	source := c.Param("source")
	deliveryID := c.GetHeader("X-GitHub-Delivery")

	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload: " + err.Error()})
		return
	}

	if !triggerActions[payload.Action] {
		c.JSON(http.StatusOK, gin.H{"triggered": false, "reason": "ignored action " + payload.Action})
		return
	}

	if h.triggerLabel != "" && !payload.hasLabel(h.triggerLabel) {
		c.JSON(http.StatusOK, gin.H{"triggered": false, "reason": "missing trigger label " + h.triggerLabel})
		return
	}

	owner, name := payload.Repository.Owner.Login, payload.Repository.Name
	if owner == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook payload missing repository coordinates"})
		return
	}

	enabled, err := h.store.RepoEnabled(c.Request.Context(), models.RepoRef{Owner: owner, Name: name})
	if err != nil {
		writeError(c, err)
		return
	}
	if !enabled {
		c.JSON(http.StatusOK, gin.H{"triggered": false, "reason": "repository disabled"})
		return
	}

	result, err := h.store.CreateTask(c.Request.Context(), models.CreateTaskRequest{
		Repo:              models.RepoRef{Owner: owner, Name: name},
		Issue:             models.IssueRef{Number: payload.Issue.Number, Title: payload.Issue.Title, Body: payload.Issue.Body},
		MaxAttempts:       h.maxAttempts,
		WebhookSource:     source,
		WebhookDeliveryID: deliveryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("Webhook processed",
		"source", source, "delivery_id", deliveryID,
		"repo", owner+"/"+name, "issue", payload.Issue.Number,
		"triggered", result.Created)

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"triggered": false, "reason": result.Reason, "task_id": result.Task.ID})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"triggered": true, "task_id": result.Task.ID})
}

// --- task inspection and control ---

type taskHandlers struct {
	store       TaskStore
	canceler    Canceler
	checkpoints CheckpointLister
	memory      OrchestrationReader
	logger      *slog.Logger
}

func (h *taskHandlers) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, err := h.store.ListTasks(c.Request.Context(), models.TaskFilters{
		Status:    c.Query("status"),
		RepoOwner: c.Query("repo_owner"),
		RepoName:  c.Query("repo_name"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": out, "count": len(out)})
}

func (h *taskHandlers) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	t, err := h.store.GetTask(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := taskDetailResponse{taskResponse: toTaskResponse(t)}

	if t.IsOrchestrated {
		children, err := h.store.Children(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		for _, child := range children {
			resp.Subtasks = append(resp.Subtasks, toTaskResponse(child))
		}
		resp.Orchestration = h.orchestrationView(c.Request.Context(), id)
	}
	c.JSON(http.StatusOK, resp)
}

// orchestrationView summarizes the subtask plan: completion counts, the
// line-weighted progress ratio, and the dependency chain that bounds overall
// duration. Best-effort; a missing plan just omits the section.
func (h *taskHandlers) orchestrationView(ctx context.Context, id uuid.UUID) *orchestrationResponse {
	if h.memory == nil {
		return nil
	}
	state, err := h.memory.Orchestration(ctx, id)
	if err != nil || state == nil || len(state.Subtasks) == 0 {
		return nil
	}

	defs := make([]models.SubtaskDefinition, 0, len(state.Subtasks))
	for _, st := range state.Subtasks {
		defs = append(defs, st.SubtaskDefinition)
	}
	completed := make(map[string]bool, len(state.CompletedSubtasks))
	for _, id := range state.CompletedSubtasks {
		completed[id] = true
	}

	view := &orchestrationResponse{
		CompletedSubtasks: len(state.CompletedSubtasks),
		TotalSubtasks:     len(state.Subtasks),
		Progress:          graph.Progress(defs, completed),
	}
	if g, err := graph.Build(defs); err == nil {
		view.CriticalPath = g.CriticalPath()
	}
	return view
}

// process acknowledges a manual processing request. Workers claim the task
// on their next poll; the endpoint only verifies it is claimable.
func (h *taskHandlers) process(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}
	t, err := h.store.GetTask(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if t.Status.Terminal() || t.Status == models.StatusWaitingHuman {
		c.JSON(http.StatusConflict, gin.H{"error": "task is not processable in status " + string(t.Status)})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true, "task_id": t.ID})
}

// cancel aborts a task: in-flight processing is cancelled via its context,
// queued tasks are failed directly.
func (h *taskHandlers) cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if h.canceler != nil && h.canceler.Cancel(id) {
		c.JSON(http.StatusAccepted, gin.H{"cancelled": true, "task_id": id})
		return
	}

	reason := "cancelled"
	t, err := h.store.UpdateStatus(c.Request.Context(), id, models.StatusFailed, services.StatusUpdate{
		LastError: &reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"cancelled": true, "task_id": t.ID})
}

// listCheckpoints returns a task's checkpoint history, newest first. The
// snapshots themselves stay server-side; only the metadata is exposed.
func (h *taskHandlers) listCheckpoints(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}
	if _, err := h.store.GetTask(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	cps, err := h.checkpoints.List(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]checkpointResponse, 0, len(cps))
	for _, cp := range cps {
		out = append(out, checkpointResponse{
			ID:        cp.ID,
			Reason:    cp.Reason,
			CreatedAt: cp.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"checkpoints": out, "count": len(out)})
}

// --- websocket ---

type wsHandler struct {
	manager *events.ConnectionManager
	logger  *slog.Logger
}

func (h *wsHandler) handle(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	h.manager.HandleConnection(c.Request.Context(), conn)
}

// --- health ---

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{}
	code := http.StatusOK
	if s.db != nil {
		db, err := s.db.Health(ctx)
		if err != nil {
			code = http.StatusServiceUnavailable
		}
		body["database"] = db
	}
	if s.queue != nil {
		if stats, qerr := s.queue.Stats(ctx); qerr != nil {
			s.logger.Warn("Failed to collect queue stats", "error", qerr)
		} else {
			body["queue"] = stats
		}
	}
	c.JSON(code, body)
}

// --- responses and error mapping ---

type taskResponse struct {
	ID              uuid.UUID  `json:"id"`
	Repo            string     `json:"repo"`
	IssueNumber     int        `json:"issue_number"`
	IssueTitle      string     `json:"issue_title"`
	Status          string     `json:"status"`
	Phase           string     `json:"phase"`
	AttemptCount    int        `json:"attempt_count"`
	TotalAttempts   int        `json:"total_attempts"`
	EscalationLevel int        `json:"escalation_level"`
	IsOrchestrated  bool       `json:"is_orchestrated"`
	BranchName      string     `json:"branch_name,omitempty"`
	PRNumber        *int       `json:"pr_number,omitempty"`
	PRURL           string     `json:"pr_url,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type checkpointResponse struct {
	ID        uuid.UUID `json:"id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type orchestrationResponse struct {
	CompletedSubtasks int      `json:"completed_subtasks"`
	TotalSubtasks     int      `json:"total_subtasks"`
	Progress          float64  `json:"progress"`
	CriticalPath      []string `json:"critical_path,omitempty"`
}

type taskDetailResponse struct {
	taskResponse
	Subtasks      []taskResponse         `json:"subtasks,omitempty"`
	Orchestration *orchestrationResponse `json:"orchestration,omitempty"`
}

func toTaskResponse(t *ent.Task) taskResponse {
	return taskResponse{
		ID:              t.ID,
		Repo:            t.RepoOwner + "/" + t.RepoName,
		IssueNumber:     t.IssueNumber,
		IssueTitle:      t.IssueTitle,
		Status:          string(t.Status),
		Phase:           string(models.PhaseOf(t.Status)),
		AttemptCount:    t.AttemptCount,
		TotalAttempts:   t.TotalAttempts,
		EscalationLevel: t.EscalationLevel,
		IsOrchestrated:  t.IsOrchestrated,
		BranchName:      t.BranchName,
		PRNumber:        t.PrNumber,
		PRURL:           t.PrURL,
		LastError:       t.LastError,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

// writeError maps service errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case services.IsValidationError(err), errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
