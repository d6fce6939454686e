// Package filter собирает спецификацию выборки фильмов из независимых
// необязательных частей: полнотекстовый поиск, пофильтровое равенство,
// фильтр по владельцу, сортировка и пагинация. Результат — набор
// gorm-scope'ов, которые слой репозитория применяет к запросу.
package filter

import "gorm.io/gorm"

// SortOrder — направление сортировки.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// MovieFilter — закрытый набор полей фильма для точного совпадения.
// nil-поле не участвует в запросе. Поля объединяются по AND.
type MovieFilter struct {
	MovieName   *string
	CreatedByID *int64
}

// UserFilter — закрытый набор полей владельца. Поля объединяются по OR:
// фильм проходит, если его владелец совпал хотя бы по одному полю.
type UserFilter struct {
	Username *string
	Email    *string
}

// OrderBy — сортировка по одному полю из белого списка.
type OrderBy struct {
	Field string
	Order SortOrder
}

// Белый список сортируемых полей: имя поля запроса -> колонка.
// Закрытое перечисление защищает от подстановки произвольных имён в SQL.
var orderColumns = map[string]string{
	"id":           "movies.id",
	"movie_name":   "movies.movie_name",
	"release_date": "movies.release_date",
}

// MovieQuery — полная спецификация выборки. Все части необязательны;
// пустой запрос означает выборку без ограничений в порядке по умолчанию.
type MovieQuery struct {
	Search  *string
	Movie   *MovieFilter
	User    *UserFilter
	OrderBy *OrderBy
	Skip    *int
	Take    *int
}

// Scopes компонует предикат, сортировку и пагинацию. Группы условий
// соединяются по AND; отсутствующая группа не ограничивает выборку.
func (q MovieQuery) Scopes() []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB

	if q.Search != nil && *q.Search != "" {
		scopes = append(scopes, searchScope(*q.Search))
	}
	if q.Movie != nil {
		scopes = append(scopes, movieScope(*q.Movie))
	}
	if q.User != nil {
		scopes = append(scopes, userScope(*q.User))
	}
	scopes = append(scopes, pageScope(q.Skip, q.Take))
	if q.OrderBy != nil {
		scopes = append(scopes, orderScope(*q.OrderBy))
	}

	return scopes
}

// searchScope: имя ИЛИ описание содержат подстроку.
func searchScope(text string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		pattern := "%" + text + "%"
		sub := tx.Session(&gorm.Session{NewDB: true}).
			Where("movies.movie_name LIKE ?", pattern).
			Or("movies.description LIKE ?", pattern)
		return tx.Where(sub)
	}
}

// movieScope: конъюнкция по каждому заданному полю фильма.
func movieScope(f MovieFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.MovieName != nil {
			tx = tx.Where("movies.movie_name = ?", *f.MovieName)
		}
		if f.CreatedByID != nil {
			tx = tx.Where("movies.created_by_id = ?", *f.CreatedByID)
		}
		return tx
	}
}

// userScope: владелец удовлетворяет дизъюнкции заданных полей.
// Именно OR, в отличие от полей фильма — это осознанная политика.
func userScope(f UserFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		fresh := tx.Session(&gorm.Session{NewDB: true})
		var sub *gorm.DB
		if f.Username != nil {
			sub = fresh.Where("users.username = ?", *f.Username)
		}
		if f.Email != nil {
			if sub == nil {
				sub = fresh.Where("users.email = ?", *f.Email)
			} else {
				sub = sub.Or("users.email = ?", *f.Email)
			}
		}
		if sub == nil {
			return tx
		}
		// JOIN добавляет колонки users в выборку — ограничиваемся movies.*
		return tx.
			Select("movies.*").
			Joins("JOIN users ON users.id = movies.created_by_id").
			Where(sub)
	}
}

// pageScope: skip/take применяются после фильтрации, offset-семантика.
func pageScope(skip, take *int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if skip != nil && *skip > 0 {
			tx = tx.Offset(*skip)
		}
		if take != nil && *take > 0 {
			tx = tx.Limit(*take)
		}
		return tx
	}
}

// orderScope: сортировка по одному полю из белого списка;
// неизвестное поле молча игнорируется.
func orderScope(o OrderBy) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		column, ok := orderColumns[o.Field]
		if !ok {
			return tx
		}
		dir := "ASC"
		if o.Order == Desc {
			dir = "DESC"
		}
		return tx.Order(column + " " + dir)
	}
}
