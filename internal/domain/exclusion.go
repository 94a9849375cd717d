package domain

import "sort"

// ExclusionSet é o conjunto de contas que não podem aparecer em destaques ou insights
type ExclusionSet struct {
	ids map[int64]struct{}
}

func NewExclusionSet(groups ...[]int64) ExclusionSet {
	ids := make(map[int64]struct{})
	for _, group := range groups {
		for _, id := range group {
			ids[id] = struct{}{}
		}
	}
	return ExclusionSet{ids: ids}
}

// Union retorna um novo conjunto, sem alterar o original
func (e ExclusionSet) Union(ids []int64) ExclusionSet {
	return NewExclusionSet(e.IDs(), ids)
}

func (e ExclusionSet) Contains(id int64) bool {
	_, ok := e.ids[id]
	return ok
}

func (e ExclusionSet) Len() int {
	return len(e.ids)
}

// IDs retorna os ids ordenados
func (e ExclusionSet) IDs() []int64 {
	ids := make([]int64, 0, len(e.ids))
	for id := range e.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
