package dto

import (
	"fmt"
	"net/url"
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/utils"
	"strings"
	"time"
)

// QueryRequest is the query string shared by the PR list, chart and report endpoints.
// Repositories may be repeated (repo=a&repo=b) or comma separated.
type QueryRequest struct {
	Author       string   `query:"author" validate:"required"`
	From         string   `query:"from" validate:"required,datetime=2006-01-02"`
	To           string   `query:"to" validate:"required,datetime=2006-01-02"`
	Repositories []string `query:"repo" validate:"required,min=1,dive,required"`
	State        string   `query:"state" validate:"omitempty,oneof=OPEN MERGED DECLINED"`
	TargetBranch string   `query:"target_branch"`
}

func QueryRequestFromURL(values url.Values) QueryRequest {
	return QueryRequest{
		Author:       strings.TrimSpace(values.Get("author")),
		From:         strings.TrimSpace(values.Get("from")),
		To:           strings.TrimSpace(values.Get("to")),
		Repositories: utils.SplitList(values["repo"]),
		State:        strings.ToUpper(strings.TrimSpace(values.Get("state"))),
		TargetBranch: strings.TrimSpace(values.Get("target_branch")),
	}
}

// ToQuery validates the request and converts it into a domain query.
func (r QueryRequest) ToQuery() (models.PRQuery, error) {
	if err := utils.Validate(r); err != nil {
		return models.PRQuery{}, fmt.Errorf("%w: %v", utils.ErrInvalidArgument, err)
	}

	from, err := time.Parse(models.DateLayout, r.From)
	if err != nil {
		return models.PRQuery{}, fmt.Errorf("%w: from: %v", utils.ErrInvalidArgument, err)
	}
	to, err := time.Parse(models.DateLayout, r.To)
	if err != nil {
		return models.PRQuery{}, fmt.Errorf("%w: to: %v", utils.ErrInvalidArgument, err)
	}
	if from.After(to) {
		return models.PRQuery{}, fmt.Errorf("%w: from date is after to date", utils.ErrInvalidArgument)
	}

	return models.PRQuery{
		Author:       r.Author,
		From:         from,
		To:           to,
		Repositories: r.Repositories,
		State:        models.PRState(r.State),
		TargetBranch: r.TargetBranch,
	}, nil
}
