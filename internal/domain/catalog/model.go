package catalog

import "github.com/google/uuid"

// CategoriesTable таблица системных категорий работ (robocizna)
const CategoriesTable = "public.kosztorys_system_labour_categories"

type Category struct {
	ID         uuid.UUID
	Name       string     // последний сегмент пути
	Number     string     // номер категории, "" — нет
	Path       string     // нормализованный полный путь
	ParentPath string     // "" — корень
	ParentID   *uuid.UUID // nil — корень
	Depth      int
}

func (c Category) IsRoot() bool { return c.ParentID == nil }
