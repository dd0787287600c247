package transformer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/nitf"
	"github.com/lcrosenbu/alliance/util"
)

// TransformHandler is a handler for /transform
// @Title transformHandler
// @Description transforms a decoded NITF segment document into a catalog record
// @Accept  json,yaml
// @Param   format          query   string  false        "record: return the attribute map instead of a GeoJSON feature"
// @Param   derivedTitle    query   bool    false        "True: include the name of the derived image"
// @Success 200 {object}  geojson.Feature
// @Failure 400 {object}  string
// @Router /transform [post]
type TransformHandler struct {
	MaxDocumentBytes int64
	DerivedQualifier string
}

// NewTransformHandler creates a new handler using configuration
// from environment variables
func NewTransformHandler() *TransformHandler {
	return &TransformHandler{
		MaxDocumentBytes: util.GetMaxDocumentBytes(),
		DerivedQualifier: util.GetDerivedQualifier(),
	}
}

type recordResponse struct {
	ID         string        `json:"id"`
	Attributes *model.Record `json:"attributes"`
	Warnings   []string      `json:"warnings"`
}

// ServeHTTP implements the http.Handler interface for the TransformHandler type
func (h TransformHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := &util.RecordingLogContext{}

	format, err := nitf.ParseFormat(r.Header.Get("Content-Type"))
	if err != nil {
		message := fmt.Sprintf("Content type %s is not supported", r.Header.Get("Content-Type"))
		util.LogSimpleErr(ctx, message, err)
		util.HTTPError(r, w, ctx, message, http.StatusUnsupportedMediaType)
		return
	}
	file, err := nitf.ReadFile(r.Body, format, h.MaxDocumentBytes)
	if err != nil {
		message := fmt.Sprintf("Could not read segment document: %v", err)
		util.LogSimpleErr(ctx, message, err)
		util.HTTPError(r, w, ctx, message, http.StatusBadRequest)
		return
	}
	record, err := NewTransformer(ctx).TransformFile(file)
	if err != nil {
		message := fmt.Sprintf("Error transforming segment document: %v", err)
		util.LogSimpleErr(ctx, message, err)
		util.HTTPError(r, w, ctx, message, http.StatusInternalServerError)
		return
	}

	derived, _ := strconv.ParseBool(r.FormValue("derivedTitle"))
	w.Header().Set("Content-Type", "application/json")

	if r.FormValue("format") == "record" {
		if derived {
			record.SetAttribute(model.DerivedResourceTitle, DerivedResource(record, h.DerivedQualifier).Title)
		}
		body, err := json.Marshal(recordResponse{ID: record.ID, Attributes: record, Warnings: ctx.Messages(util.WARNING)})
		if err != nil {
			message := fmt.Sprintf("Error serializing record: %v", err)
			util.LogSimpleErr(ctx, message, err)
			util.HTTPError(r, w, ctx, message, http.StatusInternalServerError)
			return
		}
		w.Write(body)
		return
	}

	feature, err := record.GeoJSONFeature()
	if err == nil && derived {
		err = DerivedResource(record, h.DerivedQualifier).Apply(feature)
	}
	if err != nil {
		message := fmt.Sprintf("Error converting to feature: %v", err)
		util.LogSimpleErr(ctx, message, err)
		util.HTTPError(r, w, ctx, message, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(feature.String()))
}
