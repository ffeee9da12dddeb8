// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package textproc

// DefaultLexicon returns the default list of multi-character academic
// terms registered with the segmenter so they are emitted as single
// tokens rather than split into sub-words.
func DefaultLexicon() []string {
	return []string{
		"机器学习", "深度学习", "人工智能", "神经网络", "数据分析",
		"算法", "模型", "训练", "测试", "准确率", "召回率", "F1分数",
		"预处理", "特征工程", "过拟合", "欠拟合", "交叉验证",
	}
}
