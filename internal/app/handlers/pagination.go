package handlers

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
)

const DefaultPageSize = 10

// BindQuery decodes the request's filters into q. Empty parameters are
// dropped so an unselected filter stays nil.
func BindQuery(c *gin.Context, q any) error {
	form := map[string][]string{}
	for k, vs := range c.Request.URL.Query() {
		if len(vs) > 0 && vs[0] != "" {
			form[k] = vs
		}
	}
	if err := binding.MapFormWithTag(q, form, "form"); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	return nil
}

// BindPage fills missing paging parameters with the first page.
func BindPage(q *models.PageQuery) {
	if q.PageNum == nil || *q.PageNum < 1 {
		q.PageNum = models.Int(1)
	}
	if q.PageSize == nil || *q.PageSize < 1 {
		q.PageSize = models.Int(DefaultPageSize)
	}
}

// Pager links the pages of r, keeping the request's filters.
func Pager[T any](c *gin.Context, r *models.PageResult[T]) templ.Component {
	return pages.Pager{
		Path:    c.Request.URL.Path,
		Query:   c.Request.URL.Query(),
		Current: r.Current,
		Pages:   r.Pages,
		Total:   r.Total,
	}.Component()
}

// FormInt reads an integer form field.
func FormInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.PostForm(name))
	return v, err == nil
}

func ID(id int64) string {
	return strconv.FormatInt(id, 10)
}
