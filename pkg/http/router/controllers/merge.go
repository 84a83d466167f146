package controllers

import (
	"net/http"
	"strconv"

	"github.com/bagaspn/navmerge/pkg/http/router/routerhelper"
	"github.com/bagaspn/navmerge/pkg/util"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

type MergeHandler struct {
	service   MergeService
	log       *zap.Logger
	validate  *validator.Validate
	translate ut.Translator
}

func NewMergeHandler(service MergeService, log *zap.Logger) *MergeHandler {
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translate, _ := uni.GetTranslator("en")
	enTranslations.RegisterDefaultTranslations(validate, translate)

	return &MergeHandler{
		service:   service,
		log:       log,
		validate:  validate,
		translate: translate,
	}
}

func (h *MergeHandler) Routes(group *routerhelper.RouteGroup) {
	group.GET("/navmerge/mergeCandidates", h.mergeCandidates)
	group.GET("/navmerge/canMerge", h.canMerge)
}

// mergeCandidates. GET /api/navmerge/mergeCandidates?lat=..&lon=..&radius=..
// snaps the query point to the nearest junction and reports every pair of
// departing roads the detector admits for merging.
func (h *MergeHandler) mergeCandidates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lat, errLat := strconv.ParseFloat(query.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(query.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		badRequestResponse(w, util.WrapErrorf(nil, util.ErrBadParamInput,
			"lat and lon query parameters must be valid floats"))
		return
	}
	radiusKm := 1.0
	if raw := query.Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequestResponse(w, util.WrapErrorf(nil, util.ErrBadParamInput,
				"radius query parameter must be a valid float"))
			return
		}
		radiusKm = parsed
	}

	request := mergeCandidatesRequest{Lat: lat, Lon: lon, RadiusKm: radiusKm}
	if err := h.validate.Struct(request); err != nil {
		badRequestResponse(w, translateError(err, h.translate))
		return
	}

	report, err := h.service.MergeCandidatesNear(r.Context(), lat, lon, radiusKm)
	if err != nil {
		errorStatusResponse(w, h.log, err)
		return
	}

	response := mergeCandidatesResponse{
		JunctionNode: report.JunctionNode,
		Lat:          report.Lat,
		Lon:          report.Lon,
		Candidates:   make([]candidateResponse, 0, len(report.Candidates)),
	}
	for _, detail := range report.Candidates {
		response.Candidates = append(response.Candidates, candidateResponse{
			LhsEdge:     uint32(detail.Candidate.LhsEid),
			RhsEdge:     uint32(detail.Candidate.RhsEid),
			StreetName:  detail.Candidate.StreetName,
			LhsGeometry: detail.LhsGeometry,
			RhsGeometry: detail.RhsGeometry,
		})
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": response}); err != nil {
		serverErrorResponse(w, h.log, err)
	}
}

// canMerge. GET /api/navmerge/canMerge?node=..&lhs=..&rhs=..
// evaluates one explicit pair of departing edges.
func (h *MergeHandler) canMerge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	node, errNode := strconv.Atoi(query.Get("node"))
	lhs, errLhs := strconv.Atoi(query.Get("lhs"))
	rhs, errRhs := strconv.Atoi(query.Get("rhs"))
	if errNode != nil || errLhs != nil || errRhs != nil {
		badRequestResponse(w, util.WrapErrorf(nil, util.ErrBadParamInput,
			"node, lhs and rhs query parameters must be valid integers"))
		return
	}

	request := canMergeRequest{Node: node, Lhs: lhs, Rhs: rhs}
	if err := h.validate.Struct(request); err != nil {
		badRequestResponse(w, translateError(err, h.translate))
		return
	}

	decision, err := h.service.CanMerge(r.Context(), uint32(node), uint32(lhs), uint32(rhs))
	if err != nil {
		errorStatusResponse(w, h.log, err)
		return
	}

	response := canMergeResponse{
		CanMerge:   decision.CanMerge,
		StreetName: decision.StreetName,
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": response}); err != nil {
		serverErrorResponse(w, h.log, err)
	}
}

func translateError(err error, translate ut.Translator) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fieldErr := range validationErrs {
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s",
			fieldErr.Translate(translate))
	}
	return err
}
