package classifier

import (
	"math"
	"math/rand"
	"strings"
	"unicode"

	"github.com/noabot/noabot-go/internal/model"
)

// 训练超参数
const (
	trainEpochs       = 60
	trainLearningRate = 0.2
	trainSeed         = 42 // 固定随机种子，保证训练可复现
)

// Model 线性概率分类模型（tf-idf 特征 + softmax 权重）
// 训练完成后视为不可变，只读并发安全
type Model struct {
	vocab   map[string]int // 词项 -> 特征下标
	idf     []float64      // 逆文档频率
	labels  []string       // 标签集合
	weights [][]float64    // [标签][特征]
	bias    []float64      // [标签]
}

// Train 从标注样本全量训练一个新模型。样本为空时返回空模型，
// 空模型预测永远给出零置信度的兜底标签
func Train(examples []model.IntentExample) *Model {
	m := &Model{vocab: make(map[string]int)}
	if len(examples) == 0 {
		return m
	}

	// 1. 构建词表与文档频率
	docs := make([][]string, len(examples))
	labelIndex := make(map[string]int)
	df := make(map[string]int)
	for i, ex := range examples {
		docs[i] = ngrams(ex.Text)
		if _, ok := labelIndex[ex.Label]; !ok {
			labelIndex[ex.Label] = len(m.labels)
			m.labels = append(m.labels, ex.Label)
		}
		seen := make(map[string]bool)
		for _, term := range docs[i] {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
			if _, ok := m.vocab[term]; !ok {
				m.vocab[term] = len(m.vocab)
			}
		}
	}

	// 2. 计算 idf（平滑）
	n := float64(len(examples))
	m.idf = make([]float64, len(m.vocab))
	for term, idx := range m.vocab {
		m.idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	// 3. 向量化
	vectors := make([]map[int]float64, len(docs))
	targets := make([]int, len(docs))
	for i, doc := range docs {
		vectors[i] = m.vectorize(doc)
		targets[i] = labelIndex[examples[i].Label]
	}

	// 4. SGD 最小化对数损失
	m.weights = make([][]float64, len(m.labels))
	for k := range m.weights {
		m.weights[k] = make([]float64, len(m.vocab))
	}
	m.bias = make([]float64, len(m.labels))

	rng := rand.New(rand.NewSource(trainSeed))
	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < trainEpochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, i := range order {
			probs := m.posterior(vectors[i])
			for k := range m.labels {
				grad := probs[k]
				if k == targets[i] {
					grad -= 1
				}
				step := trainLearningRate * grad
				for idx, v := range vectors[i] {
					m.weights[k][idx] -= step * v
				}
				m.bias[k] -= step
			}
		}
	}

	return m
}

// Predict 返回最可能的标签及其后验概率。空模型返回 ("", 0)，
// 由上层换成兜底标签
func (m *Model) Predict(text string) (string, float64) {
	if len(m.labels) == 0 {
		return "", 0
	}

	probs := m.posterior(m.vectorize(ngrams(text)))

	best := 0
	for k := range probs {
		if probs[k] > probs[best] {
			best = k
		}
	}
	return m.labels[best], probs[best]
}

// Labels 返回模型的标签集合
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// vectorize 词项序列 -> L2 归一化的 tf-idf 稀疏向量
func (m *Model) vectorize(terms []string) map[int]float64 {
	vec := make(map[int]float64)
	for _, term := range terms {
		if idx, ok := m.vocab[term]; ok {
			vec[idx] += m.idf[idx]
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// posterior 计算各标签的 softmax 后验
func (m *Model) posterior(vec map[int]float64) []float64 {
	scores := make([]float64, len(m.labels))
	for k := range m.labels {
		s := m.bias[k]
		for idx, v := range vec {
			s += m.weights[k][idx] * v
		}
		scores[k] = s
	}

	// 减去最大值防溢出
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	for k, s := range scores {
		scores[k] = math.Exp(s - maxScore)
		sum += scores[k]
	}
	for k := range scores {
		scores[k] /= sum
	}
	return scores
}

// ngrams 小写分词后取 unigram + bigram
func ngrams(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
