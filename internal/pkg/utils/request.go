package utils

import (
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	query := r.URL.Query()
	params := &requests.QueryParams{
		Pagination:  *BuildPaginationRequest(r),
		Status:      query.Get(constvars.URLQueryParamStatus),
		Search:      query.Get(constvars.URLQueryParamSearch),
		FromDate:    query.Get(constvars.URLQueryParamFromDate),
		ToDate:      query.Get(constvars.URLQueryParamToDate),
		SessionType: query.Get(constvars.URLQueryParamSessionType),
		PatientID:   query.Get(constvars.URLQueryParamPatientID),
	}

	if raw := query.Get(constvars.URLQueryParamPsychologistID); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			params.PsychologistID = id
		}
	}
	if raw := query.Get(constvars.URLQueryParamServiceID); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			params.ServiceID = id
		}
	}

	return params
}

// ReadRequestBody drains the body so booking payloads can be shape-checked
// before being decoded into a typed request.
func ReadRequestBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	defer r.Body.Close()
	return body, nil
}

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func UnmarshalJSON(data []byte, dst interface{}) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
