package todo

// Option - функция, которая изменяет поля задачи при обновлении
type Option func(*Todo)

func WithTitle(title string) Option {
	return func(t *Todo) {
		t.Title = title
	}
}

func WithDescription(description string) Option {
	return func(t *Todo) {
		t.Description = description
	}
}
