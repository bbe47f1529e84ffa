package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"duskpact/internal/app/apply"
	"duskpact/internal/app/interpret"
	"duskpact/internal/app/negotiate"
	"duskpact/internal/app/ports"
	"duskpact/internal/app/reset"
	"duskpact/internal/app/telemetry"
	"duskpact/internal/domain/bargain"
	"duskpact/internal/domain/behavior"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Handler exposes the difficulty loop over HTTP. The game client is the
// presentation layer; every route maps onto one use-case call. Negotiation
// cards are addressed by their confirmation token, so accept, refresh and
// decline all share one handle.
type Handler struct {
	Recorder    *telemetry.Recorder
	Interpreter interpret.UseCase
	Generator   *negotiate.Generator
	Applier     *apply.UseCase
	Resetter    reset.UseCase
	Confirmer   *negotiate.Confirmer
	Catalog     ports.CatalogProvider
	KPI         kpiSnapshotProvider

	TopN          int
	CardCount     int
	ConfirmWindow time.Duration

	mu         sync.Mutex
	session    map[string]sessionSlot
	sessionObs map[behavior.TriggerType][]behavior.Observation
}

type sessionSlot struct {
	card bargain.Card
	slot int
}

func (h *Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	battle := s.Group("/api/telemetry/battle")
	battle.POST("/started", h.battleStarted)
	battle.POST("/skill-used", h.skillUsed)
	battle.POST("/damage-dealt", h.damageDealt)
	battle.POST("/damage-received", h.damageReceived)
	battle.POST("/death", h.entityDied)
	battle.POST("/ended", h.battleEnded)

	shop := s.Group("/api/telemetry/shop")
	shop.POST("/purchased", h.shopPurchased)
	shop.POST("/exited", h.shopExited)

	s.POST("/api/telemetry/map/entered", h.mapEntered)

	s.GET("/api/observations", h.observations)
	s.GET("/api/observations/ranked", h.observationsRanked)

	negotiation := s.Group("/api/negotiation")
	negotiation.POST("/session", h.beginSession)
	negotiation.POST("/refresh", h.refresh)
	negotiation.POST("/accept", h.accept)
	negotiation.POST("/decline", h.decline)

	s.POST("/api/game/reset", h.gameReset)
	s.GET("/ops/kpi", h.kpi)
}

func (h *Handler) battleStarted(_ context.Context, ctx *app.RequestContext) {
	var ev telemetry.BattleStart
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleBattleStarted(ev)
	writeAccepted(ctx)
}

func (h *Handler) skillUsed(_ context.Context, ctx *app.RequestContext) {
	var ev telemetry.SkillUse
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleSkillUsed(ev)
	writeAccepted(ctx)
}

func (h *Handler) damageDealt(_ context.Context, ctx *app.RequestContext) {
	var ev telemetry.SkillDamage
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleSkillDamageDealt(ev)
	writeAccepted(ctx)
}

func (h *Handler) damageReceived(_ context.Context, ctx *app.RequestContext) {
	var ev telemetry.DamageReceived
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleDamageReceived(ev)
	writeAccepted(ctx)
}

func (h *Handler) entityDied(_ context.Context, ctx *app.RequestContext) {
	var ev telemetry.EntityDeath
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleEntityDied(ev)
	writeAccepted(ctx)
}

func (h *Handler) battleEnded(c context.Context, ctx *app.RequestContext) {
	h.Recorder.HandleBattleEnded(c)
	writeAccepted(ctx)
}

func (h *Handler) shopPurchased(c context.Context, ctx *app.RequestContext) {
	var ev telemetry.ShopPurchase
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleShopPurchased(c, ev)
	writeAccepted(ctx)
}

func (h *Handler) shopExited(c context.Context, ctx *app.RequestContext) {
	var ev telemetry.ShopExit
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleShopExited(c, ev)
	writeAccepted(ctx)
}

func (h *Handler) mapEntered(c context.Context, ctx *app.RequestContext) {
	var ev telemetry.MapEntered
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Recorder.HandleMapEntered(c, ev)
	writeAccepted(ctx)
}

func (h *Handler) observations(_ context.Context, ctx *app.RequestContext) {
	var out []behavior.Observation
	if t := string(ctx.Query("type")); t != "" {
		out = h.Recorder.ObservationsByType(behavior.TriggerType(t))
	} else {
		out = h.Recorder.AllObservations()
	}
	ctx.JSON(consts.StatusOK, map[string]any{"observations": out})
}

func (h *Handler) observationsRanked(_ context.Context, ctx *app.RequestContext) {
	maxN, _ := strconv.Atoi(string(ctx.Query("max")))
	if maxN <= 0 {
		maxN = h.topN()
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"observations": h.Recorder.UnresolvedRanked(maxN),
	})
}

type cardResponse struct {
	Token string       `json:"token"`
	Slot  int          `json:"slot"`
	Card  bargain.Card `json:"card"`
}

// beginSession rebuilds the offer pools from the ranked unresolved
// observations plus the default catalogue, deals a fresh hand, and opens a
// confirmation window per card. Pool exhaustion falls back to the static
// card set.
func (h *Handler) beginSession(c context.Context, ctx *app.RequestContext) {
	ranked := h.Recorder.UnresolvedRanked(h.topN())
	offers := h.Interpreter.InterpretAll(ranked)
	if h.Catalog != nil {
		if defaults, err := h.Catalog.DefaultOffers(c); err == nil {
			offers = append(offers, defaults...)
		}
	}
	h.Generator.BeginSession(offers)
	cards := h.Generator.GenerateCards(h.cardCount())
	if len(cards) == 0 && h.Catalog != nil {
		if fallback, err := h.Catalog.FallbackCards(c); err == nil {
			cards = fallback
		}
	}
	if len(ranked) > 0 {
		h.Recorder.MarkResolved(c, ranked...)
	}

	// Remember which observations fed this session's offers; an accepted
	// card destroys the ones behind its offers, a merely dealt card leaves
	// them resolved but alive.
	obsBySource := map[behavior.TriggerType][]behavior.Observation{}
	for _, obs := range ranked {
		obsBySource[obs.Trigger] = append(obsBySource[obs.Trigger], obs)
	}

	h.mu.Lock()
	h.session = map[string]sessionSlot{}
	h.sessionObs = obsBySource
	out := make([]cardResponse, 0, len(cards))
	for i, card := range cards {
		token := h.Confirmer.Start(card, h.confirmWindow())
		h.session[token] = sessionSlot{card: card, slot: i}
		out = append(out, cardResponse{Token: token, Slot: i, Card: card})
	}
	h.mu.Unlock()

	ctx.JSON(consts.StatusOK, map[string]any{"cards": out})
}

type tokenRequest struct {
	Token string `json:"token"`
}

type acceptRequest struct {
	Token  string       `json:"token"`
	Choice apply.Choice `json:"choice"`
}

func (h *Handler) refresh(_ context.Context, ctx *app.RequestContext) {
	var body tokenRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	h.mu.Lock()
	entry, ok := h.session[body.Token]
	h.mu.Unlock()
	if !ok {
		writeError(ctx, errUnknownCard)
		return
	}

	card, allowed := h.Generator.RefreshSlot(entry.slot, entry.card)
	if !allowed {
		writeError(ctx, errRefreshLimit)
		return
	}
	h.Confirmer.Cancel(body.Token)

	h.mu.Lock()
	delete(h.session, body.Token)
	var resp *cardResponse
	if card != nil {
		token := h.Confirmer.Start(*card, h.confirmWindow())
		h.session[token] = sessionSlot{card: *card, slot: entry.slot}
		resp = &cardResponse{Token: token, Slot: entry.slot, Card: *card}
	}
	h.mu.Unlock()

	ctx.JSON(consts.StatusOK, map[string]any{"card": resp})
}

func (h *Handler) accept(c context.Context, ctx *app.RequestContext) {
	var body acceptRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	h.mu.Lock()
	_, known := h.session[body.Token]
	delete(h.session, body.Token)
	h.mu.Unlock()
	if !known {
		writeError(ctx, errUnknownCard)
		return
	}

	card, ok := h.Confirmer.Claim(body.Token)
	if !ok {
		writeError(ctx, errConfirmExpired)
		return
	}

	if err := h.Applier.AcceptCard(c, card, body.Choice); err != nil {
		writeError(ctx, err)
		return
	}
	h.consumeSources(c, card.Benefit.Source, card.Cost.Source)
	ctx.JSON(consts.StatusOK, map[string]string{"status": "accepted"})
}

// consumeSources destroys the observations whose interpreted offers formed
// the accepted card. Catalogue offers carry no source and consume nothing.
func (h *Handler) consumeSources(c context.Context, sources ...behavior.TriggerType) {
	h.mu.Lock()
	var batch []behavior.Observation
	for _, s := range sources {
		if s == "" {
			continue
		}
		batch = append(batch, h.sessionObs[s]...)
		delete(h.sessionObs, s)
	}
	h.mu.Unlock()
	if len(batch) > 0 {
		h.Recorder.ConsumeObservations(c, batch...)
	}
}

// decline withdraws the card without touching the ledger or the profile.
// Its offers re-enter the pools so a later draw can reuse them.
func (h *Handler) decline(_ context.Context, ctx *app.RequestContext) {
	var body tokenRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	h.mu.Lock()
	entry, ok := h.session[body.Token]
	delete(h.session, body.Token)
	h.mu.Unlock()
	if !ok {
		writeError(ctx, errUnknownCard)
		return
	}

	h.Confirmer.Cancel(body.Token)
	h.Generator.ReleaseCardOffers(entry.card)
	if m := h.Applier.Metrics; m != nil {
		m.RecordDecline()
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "declined"})
}

func (h *Handler) gameReset(c context.Context, ctx *app.RequestContext) {
	h.Resetter.Execute(c)
	h.mu.Lock()
	h.session = nil
	h.sessionObs = nil
	h.mu.Unlock()
	ctx.JSON(consts.StatusOK, map[string]string{"status": "reset"})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h *Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h *Handler) topN() int {
	if h.TopN <= 0 {
		return 5
	}
	return h.TopN
}

func (h *Handler) cardCount() int {
	if h.CardCount <= 0 {
		return 3
	}
	return h.CardCount
}

func (h *Handler) confirmWindow() time.Duration {
	if h.ConfirmWindow <= 0 {
		return 30 * time.Second
	}
	return h.ConfirmWindow
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var errUnknownCard = errors.New("unknown or already settled card")
var errConfirmExpired = errors.New("confirmation window elapsed")
var errRefreshLimit = errors.New("refresh limit reached for slot")

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, errUnknownCard):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_card", err.Error())
	case errors.Is(err, errConfirmExpired):
		writeErrorBody(ctx, consts.StatusConflict, "confirm_expired", err.Error())
	case errors.Is(err, errRefreshLimit):
		writeErrorBody(ctx, consts.StatusConflict, "refresh_limit", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeAccepted(ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}
