package catalog

const quoteAuthor = "Equipe Mamãe em Forma"

var Quotes = []Quote{
	{Quote: "Cada passo que você dá é uma vitória. Você está fazendo um trabalho incrível, mamãe!", Author: quoteAuthor},
	{Quote: "Seu corpo criou vida. Agora é hora de cuidar dele com amor e paciência.", Author: quoteAuthor},
	{Quote: "Não existe corpo perfeito, existe corpo forte e saudável. Você está no caminho certo!", Author: quoteAuthor},
	{Quote: "A jornada de mil passos começa com um único passo. Continue!", Author: quoteAuthor},
	{Quote: "Você é mais forte do que imagina. Cada dia é uma nova conquista.", Author: quoteAuthor},
	{Quote: "Cuide de você para poder cuidar de quem você ama.", Author: quoteAuthor},
	{Quote: "Seu bem-estar importa. Reserve esse momento para você.", Author: quoteAuthor},
}

var Exercises = []Exercise{
	{
		ID:           "1",
		Title:        "Respiração Diafragmática",
		Difficulty:   DifficultyEasy,
		Instructions: "Deite-se de costas com os joelhos dobrados. Coloque uma mão no peito e outra no abdômen. Inspire profundamente pelo nariz, expandindo o abdômen. Expire lentamente pela boca.",
		Adaptations: &Adaptations{
			Normal:  "Pode iniciar logo após o parto, respeitando seu conforto.",
			Cesarea: "Aguarde liberação médica. Comece com movimentos suaves.",
		},
		VideoURL: "https://www.youtube.com/watch?v=AEbbzW7-Hts",
	},
	{
		ID:           "2",
		Title:        "Ativação do Transverso",
		Difficulty:   DifficultyModerate,
		Instructions: "Em posição de quatro apoios, inspire e ao expirar, contraia o abdômen como se estivesse puxando o umbigo para a coluna. Mantenha por 5 segundos.",
		Adaptations: &Adaptations{
			Normal:  "Execute normalmente após 2 semanas pós-parto.",
			Cesarea: "Inicie após 6-8 semanas com liberação médica.",
		},
		VideoURL: "https://www.youtube.com/watch?v=Ke9al-Aliyc",
	},
	{
		ID:           "3",
		Title:        "Ponte com Ativação",
		Difficulty:   DifficultyModerate,
		Instructions: "Deite-se de costas, joelhos dobrados, pés no chão. Contraia glúteos e abdômen, elevando o quadril. Mantenha 3 segundos e desça lentamente.",
		Adaptations: &Adaptations{
			Normal:  "Pode iniciar após 3-4 semanas.",
			Cesarea: "Aguarde cicatrização completa, cerca de 8 semanas.",
		},
		VideoURL: "https://www.youtube.com/watch?v=nH3pZ3qxwJ0",
	},
	{
		ID:           "4",
		Title:        "Exercício Hipopressivo Básico",
		Difficulty:   DifficultyIntense,
		Instructions: "Em pé, expire todo o ar e prenda a respiração. Abra as costelas como se fosse inspirar, mas sem deixar o ar entrar. Mantenha 10-15 segundos.",
		Adaptations: &Adaptations{
			Normal:  "Inicie após 6 semanas pós-parto.",
			Cesarea: "Aguarde 10-12 semanas para iniciar.",
		},
		VideoURL: "https://www.youtube.com/watch?v=INWl9XRFpnU",
	},
	{
		ID:           "5",
		Title:        "Alongamento de Quadril",
		Difficulty:   DifficultyEasy,
		Instructions: "Deite-se de costas e cruze uma perna sobre a outra. Puxe suavemente a perna de baixo em direção ao peito. Segure 30 segundos de cada lado.",
		Adaptations: &Adaptations{
			Normal:  "Pode fazer desde o primeiro dia se confortável.",
			Cesarea: "Inicie suavemente após 2 semanas.",
		},
		VideoURL: "https://www.youtube.com/watch?v=urPHpKncUpk",
	},
	{
		ID:           "6",
		Title:        "Fortalecimento de Assoalho Pélvico",
		Difficulty:   DifficultyModerate,
		Instructions: "Contraia os músculos do assoalho pélvico como se estivesse segurando a urina. Mantenha 5 segundos e relaxe. Repita 10 vezes.",
		Adaptations: &Adaptations{
			Normal:  "Inicie assim que se sentir confortável.",
			Cesarea: "Pode iniciar após liberação médica.",
		},
		VideoURL: "https://www.youtube.com/watch?v=xFYAheSzS3M",
	},
}

var Meals = map[string][]Meal{
	"seg": {
		{ID: "1", Title: "Smoothie Energético de Banana e Aveia", PrepTime: "5 min", Tags: []string{"Rápida", "Energética"}, Day: "seg"},
		{ID: "2", Title: "Salada de Frango com Quinoa", PrepTime: "20 min", Tags: []string{"Proteína", "Leve"}, Day: "seg"},
		{ID: "3", Title: "Sopa de Legumes com Frango", PrepTime: "30 min", Tags: []string{"Reconfortante", "Nutritiva"}, Day: "seg"},
	},
	"ter": {
		{ID: "4", Title: "Panqueca de Banana com Aveia", PrepTime: "15 min", Tags: []string{"Café", "Sem Açúcar"}, Day: "ter"},
		{ID: "5", Title: "Wrap de Atum com Vegetais", PrepTime: "10 min", Tags: []string{"Rápida", "Proteína"}, Day: "ter"},
		{ID: "6", Title: "Frango Grelhado com Batata Doce", PrepTime: "25 min", Tags: []string{"Jantar", "Nutritiva"}, Day: "ter"},
	},
	"qua": {
		{ID: "7", Title: "Iogurte com Frutas e Granola", PrepTime: "5 min", Tags: []string{"Rápida", "Probiótico"}, Day: "qua"},
		{ID: "8", Title: "Omelete de Vegetais", PrepTime: "10 min", Tags: []string{"Proteína", "Baixa Caloria"}, Day: "qua"},
		{ID: "9", Title: "Peixe Assado com Legumes", PrepTime: "35 min", Tags: []string{"Ômega 3", "Leve"}, Day: "qua"},
	},
	"qui": {
		{ID: "10", Title: "Açaí com Frutas e Granola", PrepTime: "5 min", Tags: []string{"Energia", "Antioxidante"}, Day: "qui"},
		{ID: "11", Title: "Salada de Grão de Bico", PrepTime: "15 min", Tags: []string{"Fibras", "Proteína Vegetal"}, Day: "qui"},
		{ID: "12", Title: "Strogonoff de Frango Light", PrepTime: "30 min", Tags: []string{"Jantar", "Cremoso"}, Day: "qui"},
	},
	"sex": {
		{ID: "13", Title: "Vitamina de Mamão e Laranja", PrepTime: "5 min", Tags: []string{"Vitamina C", "Digestiva"}, Day: "sex"},
		{ID: "14", Title: "Sanduíche Natural de Frango", PrepTime: "10 min", Tags: []string{"Rápida", "Completa"}, Day: "sex"},
		{ID: "15", Title: "Risoto de Legumes", PrepTime: "40 min", Tags: []string{"Reconfortante", "Fibras"}, Day: "sex"},
	},
	"sab": {
		{ID: "16", Title: "Tapioca com Queijo e Tomate", PrepTime: "10 min", Tags: []string{"Sem Glúten", "Leve"}, Day: "sab"},
		{ID: "17", Title: "Bowl de Quinoa com Vegetais", PrepTime: "20 min", Tags: []string{"Completa", "Nutritiva"}, Day: "sab"},
		{ID: "18", Title: "Lasanha de Berinjela", PrepTime: "45 min", Tags: []string{"Low Carb", "Reconfortante"}, Day: "sab"},
	},
	"dom": {
		{ID: "19", Title: "Panqueca Americana Saudável", PrepTime: "15 min", Tags: []string{"Especial", "Café"}, Day: "dom"},
		{ID: "20", Title: "Ceviche de Peixe", PrepTime: "20 min", Tags: []string{"Leve", "Refrescante"}, Day: "dom"},
		{ID: "21", Title: "Carne Assada com Purê de Batata", PrepTime: "60 min", Tags: []string{"Família", "Especial"}, Day: "dom"},
	},
}

var ShoppingCategories = []ShoppingCategory{
	{
		Name: "Frutas e Verduras",
		Items: []ShoppingItem{
			{ID: "s1", Name: "Banana", Quantity: "6 unidades"},
			{ID: "s2", Name: "Espinafre", Quantity: "1 maço"},
			{ID: "s3", Name: "Abacate", Quantity: "2 unidades"},
			{ID: "s4", Name: "Tomate", Quantity: "500g"},
			{ID: "s5", Name: "Berinjela", Quantity: "2 unidades"},
			{ID: "s6", Name: "Mamão", Quantity: "1 unidade"},
			{ID: "s7", Name: "Laranja", Quantity: "6 unidades"},
		},
	},
	{
		Name: "Proteínas",
		Items: []ShoppingItem{
			{ID: "s8", Name: "Peito de Frango", Quantity: "1kg"},
			{ID: "s9", Name: "Ovos", Quantity: "12 unidades"},
			{ID: "s10", Name: "Salmão", Quantity: "400g"},
			{ID: "s11", Name: "Atum em Lata", Quantity: "2 latas"},
			{ID: "s12", Name: "Carne Magra", Quantity: "500g"},
		},
	},
	{
		Name: "Grãos e Cereais",
		Items: []ShoppingItem{
			{ID: "s13", Name: "Aveia", Quantity: "500g"},
			{ID: "s14", Name: "Quinoa", Quantity: "300g"},
			{ID: "s15", Name: "Arroz Integral", Quantity: "1kg"},
			{ID: "s16", Name: "Grão de Bico", Quantity: "400g"},
			{ID: "s17", Name: "Tapioca", Quantity: "500g"},
		},
	},
	{
		Name: "Laticínios",
		Items: []ShoppingItem{
			{ID: "s18", Name: "Iogurte Natural", Quantity: "4 unidades"},
			{ID: "s19", Name: "Queijo Branco", Quantity: "200g"},
			{ID: "s20", Name: "Leite Desnatado", Quantity: "1 litro"},
		},
	},
}

var Videos = []Video{
	{ID: "v1", Title: "Introdução ao LPF - Exercícios Hipopressivos", Category: "Hipopressivos", VideoURL: "https://www.youtube.com/watch?v=VKAFhOxtvUg"},
	{ID: "v2", Title: "Postura Correta para Amamentação", Category: "Postura", VideoURL: "https://www.youtube.com/watch?v=kBEXkGnoHRg"},
	{ID: "v3", Title: "Alongamento para Alívio de Dores nas Costas", Category: "Relaxamento", VideoURL: "https://www.youtube.com/watch?v=u83PMJNERNw"},
	{ID: "v4", Title: "Yoga Nidra para Relaxamento Profundo", Category: "Relaxamento", VideoURL: "https://www.youtube.com/watch?v=WkwfWeC5zI0"},
	{ID: "v5", Title: "Respiração para Ansiedade", Category: "Relaxamento", VideoURL: "https://www.youtube.com/watch?v=Ghbhtri8em4"},
	{ID: "v6", Title: "Fortalecimento do Assoalho Pélvico", Category: "Core", VideoURL: "https://www.youtube.com/watch?v=ovCJvFCRlhI"},
	{ID: "v7", Title: "Exercícios para Diástase Leve", Category: "Core", VideoURL: "https://www.youtube.com/watch?v=ACQsaQUs8vs"},
	{ID: "v8", Title: "Autocuidado para Mães", Category: "Autocuidado", VideoURL: "https://www.youtube.com/watch?v=FlQ2wPA12Zs"},
}

var FAQs = []FAQ{
	{
		Question: "Quando posso começar os exercícios após o parto?",
		Answer:   "Para parto normal, você pode começar exercícios leves como respiração e caminhada após 2-4 semanas. Para cesárea, recomenda-se aguardar 6-8 semanas e liberação médica. Sempre respeite os sinais do seu corpo.",
	},
	{
		Question: "Os exercícios são seguros durante a amamentação?",
		Answer:   "Sim! Os exercícios do programa são de baixo impacto e seguros durante a amamentação. A atividade física moderada não afeta a produção ou qualidade do leite materno.",
	},
	{
		Question: "Como sei se tenho diástase abdominal?",
		Answer:   "A diástase pode ser identificada através do teste de autoavaliação disponível na seção 'Diástase' do app. Deite-se de costas, eleve a cabeça e sinta se há um espaço entre os músculos abdominais acima e abaixo do umbigo.",
	},
	{
		Question: "Posso fazer os exercícios todos os dias?",
		Answer:   "Recomendamos seguir a programação diária do app, que já considera períodos de descanso. Ouvir seu corpo é fundamental - se sentir fadiga excessiva, tire um dia de descanso.",
	},
	{
		Question: "Os exercícios hipopressivos são difíceis?",
		Answer:   "Os exercícios hipopressivos podem parecer estranhos no início, mas com prática ficam mais naturais. Nossos vídeos guiam cada movimento passo a passo. Comece devagar e aumente a dificuldade gradualmente.",
	},
}
