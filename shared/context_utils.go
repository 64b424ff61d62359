// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
)

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func SetIsSuperAdmin(ctx Context, isSuperAdmin bool) {
	ctx.Set("isSuperAdmin", isSuperAdmin)
}

func IsSuperAdmin(ctx Context) bool {
	v, ok := ctx.Get("isSuperAdmin").(bool)
	return ok && v
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func HasProject(ctx Context) bool {
	_, ok := ctx.Get("project").(models.Project)
	return ok
}

// SetProjectRole stores the role of the current user inside the current project.
// super admins which are not a member of the project do not have a role.
func SetProjectRole(ctx Context, role Role) {
	ctx.Set("projectRole", role)
}

func GetProjectRole(ctx Context) Role {
	role, ok := ctx.Get("projectRole").(Role)
	if !ok {
		return ""
	}
	return role
}

func SetPile(ctx Context, pile models.Pile) {
	ctx.Set("pile", pile)
}

func GetPile(ctx Context) models.Pile {
	return ctx.Get("pile").(models.Pile)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	v := SanitizeParam(GetParam(ctx, param))
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing parameter %s", param)
	}
	return uuid.Parse(v)
}

// GetProjectParam returns the project id or slug from the path.
func GetProjectParam(ctx Context) (string, error) {
	projectID := SanitizeParam(GetParam(ctx, "projectID"))
	if projectID == "" {
		return "", fmt.Errorf("could not get project id")
	}
	return projectID, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

type FilterQuery struct {
	field    string
	value    string
	operator string
}

func NewFilterQuery(field, operator, value string) FilterQuery {
	return FilterQuery{field: field, operator: operator, value: value}
}

func (f FilterQuery) Field() string {
	return f.field
}

// WithField returns a copy using the given column. Repositories use it to map
// json field names to columns before building the sql.
func (f FilterQuery) WithField(field string) FilterQuery {
	f.field = field
	return f
}

// it looks like this: filterQuery[embedment][is greater than]=10
var filterQueryKeyRegex = regexp.MustCompile(`^filterQuery\[([^\]]+)\]\[([^\]]+)\]$`)

func GetFilterQuery(ctx Context) []FilterQuery {
	query := ctx.QueryParams()
	filterQuerys := []FilterQuery{}
	for key := range query {
		match := filterQueryKeyRegex.FindStringSubmatch(key)
		if match == nil {
			continue
		}

		filterQuerys = append(filterQuerys, FilterQuery{
			field:    match[1],
			operator: match[2],
			value:    query.Get(key),
		})
	}

	return filterQuerys
}

type SortQuery struct {
	Field    string
	Operator string // asc or desc
}

// it looks like this: sort[startDate]=desc
var sortQueryKeyRegex = regexp.MustCompile(`^sort\[([^\]]+)\]$`)

func GetSortQuery(ctx Context) []SortQuery {
	query := ctx.QueryParams()
	sortQuerys := []SortQuery{}
	for key := range query {
		match := sortQueryKeyRegex.FindStringSubmatch(key)
		if match == nil {
			continue
		}

		sortQuerys = append(sortQuerys, SortQuery{
			Field:    match[1],
			Operator: query.Get(key),
		})
	}

	return sortQuerys
}

func quoteFields(field string) string {
	split := strings.Split(field, ".")
	for i, s := range split {
		split[i] = fmt.Sprintf(`"%s"`, s)
	}
	return strings.Join(split, ".")
}

// Regular expression to validate field names
var validFieldNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.]+$")

func IsValidField(field string) bool {
	return validFieldNameRegex.MatchString(field)
}

func sanitizeField(field string) string {
	if !IsValidField(field) {
		panic("invalid field name - to risky, might be sql injection")
	}

	return quoteFields(field)
}

func (f FilterQuery) SQL() string {
	field := sanitizeField(f.field)

	switch f.operator {
	case "is":
		return field + " = ?"
	case "is not":
		return field + " != ?"
	case "is greater than":
		return field + " > ?"
	case "is less than":
		return field + " < ?"
	case "is after":
		return field + " > ?"
	case "is before":
		return field + " < ?"
	case "like":
		return field + " ILIKE ?"
	default:
		return field + " = ?"
	}
}

func (f FilterQuery) Value() any {
	switch f.operator {
	case "like":
		return "%" + f.value + "%"
	default:
		return f.value
	}
}

func (s SortQuery) SQL() string {
	field := sanitizeField(s.Field)

	switch s.Operator {
	case "asc":
		return field + " asc"
	case "desc":
		return field + " desc NULLS LAST"
	default:
		return field + " asc NULLS LAST"
	}
}

func (s SortQuery) GetField() string {
	return sanitizeField(s.Field)
}
