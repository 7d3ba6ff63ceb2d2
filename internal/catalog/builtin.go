// internal/catalog/builtin.go
package catalog

// Builtin returns a copy of the canonical catalog. Enabled records come first;
// notable mentions are disabled and carry no benchmark scores.
func Builtin() []Model {
	out := make([]Model, len(builtinModels))
	copy(out, builtinModels)
	return out
}

var builtinModels = []Model{
	{
		ID: 1, Name: "Google Gemini 3 Flash", Provider: "Google",
		Scores:               Scores{MMLU: 82.4, HellaSwag: 89.2, HumanEval: 74.6, GPQA: 49.2},
		InputPricePerMillion: 0.075, OutputPricePerMillion: 0.30,
		Enabled: true, Category: CategoryBalanced, ContextWindow: "1M",
		Pros:      "Excellent value, large 1M context window, fast inference, strong vision capabilities",
		Cons:      "Rate limits on free tier, smaller than Pro version, may lack creativity",
		BestFor:   "Production apps, image analysis, cost-sensitive projects",
		PriceNote: "Best cost-performance ratio",
	},
	{
		ID: 2, Name: "Google Gemini 3 Pro", Provider: "Google",
		Scores:               Scores{MMLU: 86.8, HellaSwag: 91.5, HumanEval: 78.4, GPQA: 54.8},
		InputPricePerMillion: 1.25, OutputPricePerMillion: 5.00,
		Enabled: true, Category: CategoryFlagship, ContextWindow: "2M",
		Pros:      "Best-in-class performance, massive 2M context window, excellent reasoning, top vision",
		Cons:      "Expensive, rate limits, overkill for simple tasks",
		BestFor:   "Research, complex analysis, long documents, enterprise use",
		PriceNote: "Premium pricing",
	},
	{
		ID: 3, Name: "DeepSeek V3.2", Provider: "DeepSeek",
		Scores:               Scores{MMLU: 85.2, HellaSwag: 90.8, HumanEval: 82.6, GPQA: 52.4},
		InputPricePerMillion: 0.14, OutputPricePerMillion: 0.28,
		Enabled: true, Category: CategoryBudget, ContextWindow: "128K",
		Pros:      "Outstanding coding performance, lowest per-token cost, strong reasoning, open API",
		Cons:      "Rate limits, Chinese company (data privacy concerns), inconsistent availability",
		BestFor:   "Coding-heavy workloads, budget-conscious teams, high-volume apps",
		PriceNote: "50-80% cheaper than US alternatives",
	},
	{
		ID: 4, Name: "Qwen3 Coder", Provider: "Alibaba",
		Scores:               Scores{MMLU: 83.6, HellaSwag: 89.8, HumanEval: 85.2, GPQA: 48.6},
		InputPricePerMillion: 0.07, OutputPricePerMillion: 0.28,
		Enabled: true, Category: CategorySpecializedCoding, ContextWindow: "32K",
		Pros:      "Highest HumanEval score, excellent for code generation, very low cost, good debugging",
		Cons:      "Smaller model, weaker non-coding tasks, less reasoning depth",
		BestFor:   "Code generation, refactoring, debugging, cost-optimized development",
		PriceNote: "Cheapest for pure coding",
	},
	{
		ID: 5, Name: "Mistral Devstral 25.12", Provider: "Mistral",
		Scores:               Scores{MMLU: 84.2, HellaSwag: 90.2, HumanEval: 80.4, GPQA: 51.8},
		InputPricePerMillion: 0.30, OutputPricePerMillion: 0.90,
		Enabled: true, Category: CategoryBalanced, ContextWindow: "128K",
		Pros:      "Strong balanced performance, European company (GDPR compliant), good reasoning",
		Cons:      "Less brand recognition, fewer integrations, mid-tier pricing",
		BestFor:   "European projects, GDPR-sensitive applications, balanced workloads",
		PriceNote: "EU compliance benefit",
	},
	{
		ID: 6, Name: "Mistral Codestral 25.08", Provider: "Mistral",
		Scores:               Scores{MMLU: 82.8, HellaSwag: 89.4, HumanEval: 84.8, GPQA: 49.4},
		InputPricePerMillion: 0.25, OutputPricePerMillion: 0.75,
		Enabled: true, Category: CategorySpecializedCoding, ContextWindow: "64K",
		Pros:      "Code-specialized, excellent code quality, good documentation, reliable outputs",
		Cons:      "Less versatile, weaker general reasoning, no vision capabilities",
		BestFor:   "Code generation, refactoring, code review, technical docs",
		PriceNote: "Reasonable for code niche",
	},
	{
		ID: 7, Name: "Moonshot AI Kimi K2.5", Provider: "Moonshot AI",
		Scores:               Scores{MMLU: 85.8, HellaSwag: 91.2, HumanEval: 79.4, GPQA: 53.2},
		InputPricePerMillion: 0.50, OutputPricePerMillion: 1.00,
		Enabled: true, Category: CategoryBalanced, ContextWindow: "200K",
		Pros:      "Strong all-around, excellent reasoning, good coding, competitive performance",
		Cons:      "Asian market focus, less Western support, mid-range pricing",
		BestFor:   "General-purpose AI, multilingual tasks, Asian market apps",
		PriceNote: "Good for mixed workloads",
	},
	{
		ID: 8, Name: "Claude 3.5 Haiku", Provider: "Anthropic",
		Scores:               Scores{MMLU: 84.6, HellaSwag: 90.4, HumanEval: 76.8, GPQA: 51.2},
		InputPricePerMillion: 0.25, OutputPricePerMillion: 1.25,
		Enabled: true, Category: CategoryConversational, ContextWindow: "200K",
		Pros:      "Anthropic quality, fast responses, reliable outputs, good for conversation",
		Cons:      "Higher output costs, no free tier, may be verbose",
		BestFor:   "Chatbots, conversation AI, quick queries, customer service",
		PriceNote: "Higher output cost",
	},
	{
		ID: 9, Name: "xAI Grok 4.1 Fast", Provider: "xAI",
		Scores:               Scores{MMLU: 83.4, HellaSwag: 89.6, HumanEval: 75.4, GPQA: 50.4},
		InputPricePerMillion: 0.15, OutputPricePerMillion: 0.60,
		Enabled: true, Category: CategoryBalanced, ContextWindow: "131K",
		Pros:      "Good performance, xAI ecosystem, fast responses, X integration",
		Cons:      "Less established, smaller community, limited track record",
		BestFor:   "xAI ecosystem projects, Twitter/X integration, fast reasoning",
		PriceNote: "Mid-range pricing",
	},
	{
		ID: 10, Name: "Meta Llama 4 Maverick", Provider: "Meta",
		Scores:               Scores{MMLU: 82.6, HellaSwag: 88.8, HumanEval: 74.8, GPQA: 48.8},
		InputPricePerMillion: 0.20, OutputPricePerMillion: 0.60,
		OpenSource: true, Enabled: true, Category: CategoryOpenSource, ContextWindow: "128K",
		Pros:      "Fully open-source, self-hostable, no API costs, customizable, privacy-focused",
		Cons:      "Requires technical setup, self-hosting costs, less polished than commercial",
		BestFor:   "Self-hosting, privacy-sensitive apps, customization, research",
		PriceNote: "Free to use (hosting costs apply)",
	},
	{
		ID: 11, Name: "Meta Llama 4 Scout", Provider: "Meta",
		Scores:               Scores{MMLU: 78.4, HellaSwag: 86.2, HumanEval: 68.4, GPQA: 45.6},
		InputPricePerMillion: 0.10, OutputPricePerMillion: 0.30,
		OpenSource: true, Enabled: true, Category: CategoryOpenSource, ContextWindow: "32K",
		Pros:      "Lightweight, fastest inference, fully open-source, lowest commercial cost",
		Cons:      "Lower performance, not for complex reasoning, requires optimization",
		BestFor:   "Edge deployment, simple tasks, learning, hobby projects",
		PriceNote: "Cheapest commercial + open-source",
	},
	{
		ID: 12, Name: "Qwen3 Thinking 30B", Provider: "Alibaba",
		Scores:               Scores{MMLU: 80.6, HellaSwag: 88.4, HumanEval: 71.2, GPQA: 47.8},
		InputPricePerMillion: 0.10, OutputPricePerMillion: 0.40,
		Enabled: true, Category: CategoryReasoningFocus, ContextWindow: "32K",
		Pros:      "Reasoning-focused, step-by-step thinking, low cost, good for math/logic",
		Cons:      "Smaller model, slower due to thinking process, weaker coding",
		BestFor:   "Math problems, logical reasoning, step-by-step analysis, tutoring",
		PriceNote: "Low cost for reasoning",
	},
	{
		ID: 13, Name: "MiniMax M2.1 (Free)", Provider: "MiniMax",
		Scores: Scores{MMLU: 84.8, HellaSwag: 90.6, HumanEval: 80.2, GPQA: 52.6},
		Free:   true, Enabled: true, Category: CategoryFreeTier, ContextWindow: "200K",
		Pros:      "Completely free, excellent all-around performance, strong reasoning, great for development",
		Cons:      "Usage limits, rate limits, no commercial SLA, newer with limited track record",
		BestFor:   "Personal projects, development, testing, learning, prototyping",
		PriceNote: "FREE (with limits)",
	},
	{
		ID: 14, Name: "MiniMax M2.1 (Paid)", Provider: "MiniMax",
		Scores:               Scores{MMLU: 84.8, HellaSwag: 90.6, HumanEval: 80.2, GPQA: 52.6},
		InputPricePerMillion: 0.50, OutputPricePerMillion: 1.00,
		Enabled: true, Category: CategoryBalanced, ContextWindow: "200K",
		Pros:      "Same performance as free tier, unlimited usage, commercial use allowed, good support",
		Cons:      "Still newer than competitors, less established, pricing may change",
		BestFor:   "Production apps, commercial use, unlimited usage needs",
		PriceNote: "Reasonable paid tier",
	},
	{
		ID: 15, Name: "MiniMax Lightning", Provider: "MiniMax",
		Scores: Scores{MMLU: 82.2, HellaSwag: 88.8, HumanEval: 76.4, GPQA: 49.8},
		Free:   true, Enabled: true, Category: CategoryFreeTier, ContextWindow: "64K",
		Pros:      "Fastest option, free tier, good for simple quick tasks",
		Cons:      "Lower performance than standard M2.1, usage limits",
		BestFor:   "Quick queries, high-volume simple tasks, prototyping",
		PriceNote: "FREE (fastest option)",
	},

	// Notable mentions.
	{
		ID: 101, Name: "Claude 3.7 Sonnet", Provider: "Anthropic",
		InputPricePerMillion: 3, OutputPricePerMillion: 15,
		Category: CategoryFlagship, ContextWindow: "200K",
		Pros:      "Anthropic's top model, excellent complex reasoning and coding capabilities",
		Cons:      "Expensive, rate limits, no vision capabilities",
		BestFor:   "Enterprise research, complex analysis, coding at scale",
		PriceNote: "$3/$15",
	},
	{
		ID: 102, Name: "Claude 3.5 Sonnet", Provider: "Anthropic",
		InputPricePerMillion: 3, OutputPricePerMillion: 15,
		Category: CategoryFlagship, ContextWindow: "200K",
		Pros:      "Excellent balance of capability and speed, strong reasoning",
		Cons:      "Still expensive compared to alternatives",
		BestFor:   "General-purpose enterprise use, complex tasks",
		PriceNote: "$3/$15",
	},
	{
		ID: 103, Name: "GPT-4 Turbo", Provider: "OpenAI",
		InputPricePerMillion: 10, OutputPricePerMillion: 30,
		Category: CategoryFlagship, ContextWindow: "128K",
		Pros:      "OpenAI's top model, excellent reasoning and tool use capabilities",
		Cons:      "Very expensive, rate limits, complex pricing",
		BestFor:   "Enterprise applications, complex reasoning, tool integration",
		PriceNote: "$10/$30",
	},
	{
		ID: 104, Name: "GPT-4o", Provider: "OpenAI",
		InputPricePerMillion: 5, OutputPricePerMillion: 15,
		Category: CategoryFlagship, ContextWindow: "128K",
		Pros:      "Omni model with excellent vision and audio capabilities",
		Cons:      "Expensive for high-volume, complex pricing structure",
		BestFor:   "Multimodal applications, vision + text tasks",
		PriceNote: "$5/$15",
	},
	{
		ID: 105, Name: "GPT-3.5 Turbo", Provider: "OpenAI",
		InputPricePerMillion: 0.50, OutputPricePerMillion: 1.50,
		Category: CategoryBudget, ContextWindow: "16K",
		Pros:      "Inexpensive, fast, good for simple tasks",
		Cons:      "Weaker reasoning, limited context, less capable",
		BestFor:   "High-volume simple tasks, cost-sensitive applications",
		PriceNote: "$0.50/$1.50",
	},
	{
		ID: 106, Name: "DeepSeek Chat", Provider: "DeepSeek",
		InputPricePerMillion: 0.14, OutputPricePerMillion: 0.28,
		Category: CategoryBudget, ContextWindow: "128K",
		Pros:      "Chat-focused, great value, similar to V3.2 for dialogue",
		Cons:      "Rate limits, less specialized than V3.2",
		BestFor:   "Conversational AI on a budget",
		PriceNote: "$0.14/$0.28",
	},
	{
		ID: 107, Name: "Qwen 2.5", Provider: "Alibaba",
		InputPricePerMillion: 0.07, OutputPricePerMillion: 0.14,
		Category: CategoryBudget, ContextWindow: "128K",
		Pros:      "Extremely low cost, good performance for simple tasks",
		Cons:      "Less capable for complex reasoning",
		BestFor:   "Simple chatbots, high-volume low-complexity tasks",
		PriceNote: "$0.07/$0.14",
	},
	{
		ID: 108, Name: "CodeLlama 70B", Provider: "Meta",
		Free: true, OpenSource: true,
		Category: CategorySpecializedCoding, ContextWindow: "128K",
		Pros:      "Meta's code-specialized model, fully open-source, large parameter count",
		Cons:      "Requires significant resources to run, slower inference",
		BestFor:   "Self-hosted code generation, research on code models",
		PriceNote: "Open Source",
	},
	{
		ID: 109, Name: "StarCoder 2", Provider: "BigCode",
		Free: true, OpenSource: true,
		Category: CategorySpecializedCoding, ContextWindow: "16K",
		Pros:      "Open-source code model trained on 300+ languages, well-documented",
		Cons:      "Smaller context window, less capable overall",
		BestFor:   "Open-source code projects, language-specific tasks",
		PriceNote: "Open Source",
	},
	{
		ID: 110, Name: "WizardMath", Provider: "Microsoft",
		Free: true, OpenSource: true,
		Category: CategoryReasoningFocus, ContextWindow: "8K",
		Pros:      "Math-specialized open-source model, excellent for arithmetic",
		Cons:      "Very small context window, limited to math-focused tasks",
		BestFor:   "Mathematical computations, educational applications",
		PriceNote: "Open Source",
	},
	{
		ID: 111, Name: "Llama 3.1 Instruct", Provider: "Meta",
		Free: true, OpenSource: true,
		Category: CategoryConversational, ContextWindow: "128K",
		Pros:      "Meta's instruction-tuned model, excellent for chat, fully open-source",
		Cons:      "Less polished than commercial alternatives",
		BestFor:   "Self-hosted chatbots, open-source projects",
		PriceNote: "Open Source",
	},
	{
		ID: 112, Name: "Gemma 2", Provider: "Google",
		Free: true, OpenSource: true,
		Category: CategoryConversational, ContextWindow: "128K",
		Pros:      "Google's lightweight open-source model, efficient inference",
		Cons:      "Less capable than larger models",
		BestFor:   "Edge deployment, efficient open-source chat",
		PriceNote: "Open Source",
	},
	{
		ID: 113, Name: "Command R+", Provider: "Cohere",
		InputPricePerMillion: 0.50, OutputPricePerMillion: 2.00,
		Category: CategoryEnterprise, ContextWindow: "128K",
		Pros:      "Enterprise-focused, excellent RAG capabilities, strong retrieval",
		Cons:      "Less brand recognition, requires Cohere ecosystem",
		BestFor:   "Enterprise RAG, document retrieval, knowledge management",
		PriceNote: "$0.50/$2.00",
	},
}
