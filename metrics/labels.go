package metrics

import (
	"fmt"
	"sort"
	"strings"
)

// LabelCounts は各ラベルの出現回数を数える
func LabelCounts(labels []string) map[string]int {
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	return counts
}

// UniqueLabels は重複を除いたラベルを辞書順で返す
func UniqueLabels(labels []string) []string {
	counts := LabelCounts(labels)
	unique := make([]string, 0, len(counts))
	for l := range counts {
		unique = append(unique, l)
	}
	sort.Strings(unique)
	return unique
}

// FormatLabelCounts は "<label> <count> dataPoints" 形式の行をラベルの辞書順で連結する
// 表示は呼び出し側の責務なので、ここでは文字列を返すだけにとどめる。
func FormatLabelCounts(counts map[string]int) string {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	var sb strings.Builder
	for _, l := range labels {
		fmt.Fprintf(&sb, "%s %d dataPoints\n", l, counts[l])
	}
	return sb.String()
}
