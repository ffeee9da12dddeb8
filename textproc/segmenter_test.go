package textproc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seg *Segmenter, text string) []string {
	t.Helper()
	var tokens []string
	for token := range seg.Segment(text) {
		tokens = append(tokens, token)
	}
	return tokens
}

func TestSegmenter(t *testing.T) {
	seg, err := NewSegmenter(DefaultLexicon())
	require.NoError(t, err)

	t.Run("segments chinese text into words", func(t *testing.T) {
		tokens := collect(t, seg, "今天晚上我要去看电影")
		assert.Contains(t, tokens, "今天")
		assert.Contains(t, tokens, "电影")
	})

	t.Run("lexicon terms are never split", func(t *testing.T) {
		tokens := collect(t, seg, "本文研究机器学习与特征工程方法")
		assert.Contains(t, tokens, "机器学习")
		assert.Contains(t, tokens, "特征工程")
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		first := collect(t, seg, "神经网络模型的训练与测试")
		second := collect(t, seg, "神经网络模型的训练与测试")
		assert.Equal(t, first, second)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		sequence := seg.Segment("数据分析与交叉验证")
		first := slices.Collect(sequence)
		second := slices.Collect(sequence)
		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	})

	t.Run("sequence supports early exit", func(t *testing.T) {
		var first string
		for token := range seg.Segment("深度学习是人工智能的分支") {
			first = token
			break
		}
		assert.NotEmpty(t, first)
	})

	t.Run("rare compound entries are re-cut into common words", func(t *testing.T) {
		// 天气晴朗 is a low-frequency dictionary compound; keeping it
		// whole would hide the 天气 it shares with 天气晴.
		tokens := collect(t, seg, "天气晴朗")
		assert.Contains(t, tokens, "天气")
		assert.Contains(t, tokens, "晴朗")
		assert.NotContains(t, tokens, "天气晴朗")
	})

	t.Run("rare compounds with no common constituents dissolve", func(t *testing.T) {
		tokens := collect(t, seg, "今天是周天")
		assert.Contains(t, tokens, "今天")
		assert.NotContains(t, tokens, "周天")
	})

	t.Run("adjacent function characters stay separate", func(t *testing.T) {
		tokens := collect(t, seg, "晚上我要去看电影")
		assert.Contains(t, tokens, "晚上")
		assert.Contains(t, tokens, "电影")
		assert.NotContains(t, tokens, "我要")
	})

	t.Run("custom lexicon overrides general segmentation", func(t *testing.T) {
		custom, err := NewSegmenter([]string{"量子退火算法"})
		require.NoError(t, err)
		tokens := collect(t, custom, "我们采用量子退火算法求解")
		assert.Contains(t, tokens, "量子退火算法")
	})

	t.Run("lexicon exempts rare dictionary terms from re-cutting", func(t *testing.T) {
		custom, err := NewSegmenter([]string{"天气晴朗"})
		require.NoError(t, err)
		tokens := collect(t, custom, "天气晴朗")
		assert.Contains(t, tokens, "天气晴朗")
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, collect(t, seg, ""))
	})
}
