package fixtures

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
)

var staticAuthors = []entities.Author{
	{ID: "author-1", Name: "Alice", Bio: "I'm a writer and a poet"},
	{ID: "author-2", Name: "Bob", Bio: "I'm a programmer and a gamer"},
	{ID: "author-3", Name: "Charlie", Bio: "I'm a musician and a painter"},
	{ID: "author-4", Name: "David", Bio: "I'm a teacher and a student"},
	{ID: "author-5", Name: "Eve", Bio: "I'm a designer and a photographer"},
	{ID: "author-6", Name: "Frank", Bio: "I'm a chef and a food critic"},
	{ID: "author-7", Name: "Grace", Bio: "I'm a dancer and a choreographer"},
	{ID: "author-8", Name: "Heidi", Bio: "I'm a gardener and a florist"},
	{ID: "author-9", Name: "Ivan", Bio: "I'm a scientist and an engineer"},
	{ID: "author-10", Name: "Judy", Bio: "I'm a doctor and a nurse"},
	{ID: "author-11", Name: "Kevin", Bio: "I'm a lawyer and a judge"},
	{ID: "author-12", Name: "Linda", Bio: "I'm a banker and an economist"},
}

// StaticAuthors 返回内置的 12 位作者 (拷贝)。
func StaticAuthors() []entities.Author {
	out := make([]entities.Author, len(staticAuthors))
	copy(out, staticAuthors)
	return out
}

// RandomAuthors 使用给定种子生成 n 位作者，相同的种子总是得到相同的作者池。
func RandomAuthors(seed int64, n int) []entities.Author {
	faker := gofakeit.New(seed)
	out := make([]entities.Author, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entities.Author{
			ID:   fmt.Sprintf("%s%d", constant.AuthorIDPrefix, i),
			Name: faker.FirstName(),
			Bio: fmt.Sprintf("I'm %s and %s",
				withArticle(strings.ToLower(faker.JobTitle())),
				withArticle(strings.ToLower(faker.JobTitle()))),
		})
	}
	return out
}

func withArticle(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}
