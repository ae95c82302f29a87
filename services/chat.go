package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/utils"
)

// ChatReply is a single bot turn: the response text plus optional
// quick-reply suggestions and product cards.
type ChatReply struct {
	Text        string           `json:"text"`
	Suggestions []string         `json:"suggestions,omitempty"`
	Products    []models.Product `json:"products,omitempty"`
}

// chatRule pairs a keyword predicate with a response builder. Rules are
// evaluated in order; the first match wins.
type chatRule struct {
	keywords []string
	respond  func(s *ChatService, text, userEmail string) ChatReply
}

var trackingCodeRegex = regexp.MustCompile(`(?i)[A-Z]{2}[A-Z0-9]{8}`)

var categoryKeywords = []struct {
	keywords   []string
	categories []models.ProductCategory
}{
	{[]string{"rolê", "role", "cerveja", "boteco", "bebida"}, []models.ProductCategory{models.CategoryRolee}},
	{[]string{"cesta", "presente", "gourmet"}, []models.ProductCategory{models.CategoryCestas}},
	{[]string{"café", "cafe", "brunch"}, []models.ProductCategory{models.CategoryCafe}},
	{[]string{"namorados", "romântico", "romantico", "casal", "date"}, []models.ProductCategory{models.CategoryNamorados}},
	{[]string{"fit", "fitness", "saudável", "saudavel", "proteína", "proteina"}, []models.ProductCategory{models.CategoryFit}},
	{[]string{"vegan", "vegano", "plant"}, []models.ProductCategory{models.CategoryVegan}},
	{[]string{"churrasco", "carne", "bbq"}, []models.ProductCategory{models.CategoryChurrasco}},
	{[]string{"todos", "tudo"}, []models.ProductCategory{
		models.CategoryRolee, models.CategoryCestas, models.CategoryCafe, models.CategoryNamorados,
		models.CategoryFit, models.CategoryVegan, models.CategoryChurrasco,
	}},
}

// ChatService answers single-turn support questions with read-only access
// to the cart, favorites and order containers. It keeps no conversation
// state of its own.
type ChatService struct {
	cart      *CartService
	favorites *FavoritesService
	orders    *OrderService
	rules     []chatRule
}

// NewChatService builds the responder over the live containers
func NewChatService(cart *CartService, favorites *FavoritesService, orders *OrderService) *ChatService {
	s := &ChatService{cart: cart, favorites: favorites, orders: orders}
	s.rules = []chatRule{
		{[]string{"carrinho", "cart"}, (*ChatService).replyCart},
		{[]string{"ver produtos", "produtos", "catálogo", "catalogo", "ver kits"}, (*ChatService).replyCatalogMenu},
		{[]string{"rastrear", "rastreio", "tracking"}, (*ChatService).replyTrackingPrompt},
		{[]string{"pedido", "pedidos", "compra", "ordem"}, (*ChatService).replyOrders},
		{[]string{"favorito", "favoritos", "salvos", "curtidos"}, (*ChatService).replyFavorites},
		{[]string{"recomendar", "sugestão", "sugestao", "indicar"}, (*ChatService).replyRecommendations},
		{[]string{"total", "quanto", "valor"}, (*ChatService).replyTotals},
		{[]string{"entrega", "prazo", "frete"}, (*ChatService).replyDelivery},
		{[]string{"pagamento", "pagar", "pix", "cartão", "cartao"}, (*ChatService).replyPayment},
		{[]string{"cupom", "desconto"}, (*ChatService).replyCoupons},
	}
	return s
}

// Greeting returns the opening bot message and its quick replies
func (s *ChatService) Greeting() ChatReply {
	return ChatReply{
		Text:        "Olá! 👋 Sou o assistente da ABRE AÍ!\n\nPosso te ajudar com:\n• Ver produtos e categorias\n• Consultar e rastrear pedidos\n• Favoritos e totais do carrinho\n\nComo posso ajudar?",
		Suggestions: []string{"🎁 Ver produtos", "🛒 Ver carrinho", "📦 Meus pedidos", "❤️ Favoritos"},
	}
}

// Respond classifies a single message and returns the first matching
// canned reply, falling back to a default when nothing matches. userEmail
// scopes order lookups; empty means unidentified.
func (s *ChatService) Respond(text, userEmail string) ChatReply {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return s.fallback()
	}

	// A bare tracking code beats the keyword cascade
	if code := trackingCodeRegex.FindString(text); code != "" && len(strings.Fields(text)) <= 3 {
		return s.replyTrackingLookup(strings.ToUpper(code))
	}

	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.respond(s, lower, userEmail)
			}
		}
	}

	// Category names work without the "produtos" prefix
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return s.replyCategory(entry.categories)
			}
		}
	}

	return s.fallback()
}

func (s *ChatService) fallback() ChatReply {
	return ChatReply{
		Text:        "Não entendi muito bem 🤔\n\nTenta perguntar sobre produtos, seu carrinho, pedidos ou favoritos!",
		Suggestions: []string{"🎁 Ver produtos", "🛒 Ver carrinho", "🔙 Menu"},
	}
}

func (s *ChatService) replyCart(text, userEmail string) ChatReply {
	items := s.cart.Items()
	if len(items) == 0 {
		return ChatReply{
			Text:        "Seu carrinho está vazio! 🛒\n\nQue tal explorar nossos produtos?",
			Suggestions: []string{"🎁 Ver produtos", "❤️ Ver favoritos"},
		}
	}

	var list strings.Builder
	for _, item := range items {
		fmt.Fprintf(&list, "• %s (%dx) - %s\n", item.Name, item.Quantity, utils.FormatBRL(item.UnitPrice*float64(item.Quantity)))
	}
	return ChatReply{
		Text:        fmt.Sprintf("🛒 Seu Carrinho (%d itens):\n\n%s\n💰 Total: %s", s.cart.ItemCount(), list.String(), utils.FormatBRL(s.cart.TotalPrice())),
		Suggestions: []string{"➕ Adicionar mais", "✅ Finalizar pedido", "🔙 Menu"},
	}
}

func (s *ChatService) replyCatalogMenu(text, userEmail string) ChatReply {
	return ChatReply{
		Text:        "Qual categoria te interessa? 🎯",
		Suggestions: []string{"🍺 Rolê", "🎁 Cestas", "☕ Café", "💕 Namorados", "💪 Fit", "🌱 Vegan", "🔥 Churrasco", "📋 Ver todos"},
	}
}

func (s *ChatService) replyCategory(categories []models.ProductCategory) ChatReply {
	products := models.ProductsByCategory(categories...)
	if len(products) > 5 {
		products = products[:5]
	}

	var list strings.Builder
	for i, p := range products {
		fmt.Fprintf(&list, "%d. %s\n   %s - %s\n\n", i+1, p.Name, utils.FormatBRL(p.Price), p.Description)
	}
	return ChatReply{
		Text:        fmt.Sprintf("✨ Produtos encontrados (%d):\n\n%s💡 Adicione pelo id do produto!", len(products), list.String()),
		Suggestions: []string{"🔙 Outras categorias"},
		Products:    products,
	}
}

func (s *ChatService) replyOrders(text, userEmail string) ChatReply {
	if userEmail == "" {
		return ChatReply{
			Text:        "Para ver seus pedidos, você precisa estar logado! 🔐",
			Suggestions: []string{"👤 Como faço login?", "🔙 Menu"},
		}
	}

	orders := s.orders.ByCustomerEmail(userEmail)
	if len(orders) == 0 {
		return ChatReply{
			Text:        "Você ainda não tem pedidos! 📦\n\nQue tal fazer seu primeiro pedido?",
			Suggestions: []string{"🎁 Ver produtos", "🔙 Menu"},
		}
	}

	shown := orders
	if len(shown) > 3 {
		shown = shown[:3]
	}
	var list strings.Builder
	for _, order := range shown {
		fmt.Fprintf(&list, "📦 %s\n   Status: %s\n   Total: %s\n   Código: %s\n\n", order.ID, order.Status.Label(), utils.FormatBRL(order.Total), order.TrackingCode)
	}
	return ChatReply{
		Text:        fmt.Sprintf("Seus Pedidos (%d):\n\n%s", len(orders), strings.TrimRight(list.String(), "\n")),
		Suggestions: []string{"📍 Rastrear pedido", "🎁 Fazer novo pedido", "🔙 Menu"},
	}
}

func (s *ChatService) replyTrackingPrompt(text, userEmail string) ChatReply {
	return ChatReply{
		Text:        "Para rastrear, me envie o código do seu pedido!\n\nFormato: ABXXXXXXXX (10 caracteres)",
		Suggestions: []string{"📦 Ver meus pedidos", "🔙 Menu"},
	}
}

func (s *ChatService) replyTrackingLookup(code string) ChatReply {
	order, err := s.orders.ByTrackingCode(code)
	if err != nil {
		return ChatReply{
			Text:        fmt.Sprintf("Não encontrei nenhum pedido com o código \"%s\" 😕\n\nVerifique se digitou corretamente!", code),
			Suggestions: []string{"📦 Meus pedidos", "🔙 Menu"},
		}
	}
	return ChatReply{
		Text: fmt.Sprintf("📦 Pedido Encontrado!\n\nCódigo: %s\nStatus: %s\nData: %s\nTotal: %s",
			order.TrackingCode, order.Status.Label(), order.CreatedAt.Format("02/01/2006"), utils.FormatBRL(order.Total)),
		Suggestions: []string{"📦 Ver todos os pedidos", "🔙 Menu"},
	}
}

func (s *ChatService) replyFavorites(text, userEmail string) ChatReply {
	favorites := s.favorites.Items()
	if len(favorites) == 0 {
		return ChatReply{
			Text:        "Você não tem favoritos ainda! ❤️\n\nAdicione produtos aos favoritos para vê-los aqui.",
			Suggestions: []string{"🎁 Ver produtos", "🔙 Menu"},
		}
	}

	shown := favorites
	if len(shown) > 5 {
		shown = shown[:5]
	}
	var list strings.Builder
	for i, fav := range shown {
		fmt.Fprintf(&list, "%d. %s - %s\n", i+1, fav.Name, utils.FormatBRL(fav.UnitPrice))
	}
	return ChatReply{
		Text:        fmt.Sprintf("❤️ Seus Favoritos (%d):\n\n%s", s.favorites.Count(), list.String()),
		Suggestions: []string{"🔙 Menu"},
	}
}

func (s *ChatService) replyRecommendations(text, userEmail string) ChatReply {
	items := s.cart.Items()
	if len(items) == 0 {
		popular := models.Catalog()[:3]
		var list strings.Builder
		for i, p := range popular {
			fmt.Fprintf(&list, "%d. %s\n   %s - %s\n\n", i+1, p.Name, utils.FormatBRL(p.Price), p.Description)
		}
		return ChatReply{
			Text:        fmt.Sprintf("🌟 Nossos produtos mais populares:\n\n%s", list.String()),
			Suggestions: []string{"🎁 Ver todos os produtos"},
			Products:    popular,
		}
	}

	inCart := make(map[models.ProductCategory]bool)
	for _, item := range items {
		inCart[item.Category] = true
	}
	var complementary []models.Product
	for _, p := range models.Catalog() {
		if !inCart[p.Category] && !s.cart.IsInCart(p.ID) {
			complementary = append(complementary, p)
		}
		if len(complementary) == 3 {
			break
		}
	}
	if len(complementary) == 0 {
		return ChatReply{
			Text:        "Você já tem uma ótima seleção no carrinho! 🎉",
			Suggestions: []string{"🛒 Ver carrinho", "✅ Finalizar pedido"},
		}
	}

	var list strings.Builder
	for i, p := range complementary {
		fmt.Fprintf(&list, "%d. %s\n   %s - %s\n\n", i+1, p.Name, utils.FormatBRL(p.Price), p.Description)
	}
	return ChatReply{
		Text:        fmt.Sprintf("💡 Baseado no seu carrinho, recomendo:\n\n%s", list.String()),
		Suggestions: []string{"🎁 Ver mais produtos", "🛒 Ver carrinho"},
		Products:    complementary,
	}
}

func (s *ChatService) replyTotals(text, userEmail string) ChatReply {
	if s.cart.ItemCount() == 0 {
		return ChatReply{
			Text:        "Seu carrinho está vazio! Adicione produtos para calcular o total.",
			Suggestions: []string{"🎁 Ver produtos"},
		}
	}
	return ChatReply{
		Text: fmt.Sprintf("💰 Resumo do Carrinho:\n\nItens: %d\nSubtotal: %s\nFrete: Calculado no checkout",
			s.cart.ItemCount(), utils.FormatBRL(s.cart.TotalPrice())),
		Suggestions: []string{"✅ Finalizar pedido", "➕ Adicionar mais", "🔙 Menu"},
	}
}

func (s *ChatService) replyDelivery(text, userEmail string) ChatReply {
	return ChatReply{
		Text: fmt.Sprintf("📦 Prazos de Entrega:\n\n• Região Metropolitana: %s\n• Interior: %s\n• Outras regiões: %s\n\n🚀 Frete padrão a partir de %s!",
			utils.GetDeliveryWindow(utils.DeliveryTierMetropolitan),
			utils.GetDeliveryWindow(utils.DeliveryTierInterior),
			utils.GetDeliveryWindow(utils.DeliveryTierRemote),
			utils.FormatBRL(utils.StandardShippingCharge)),
		Suggestions: []string{"🎁 Ver produtos", "💬 Falar no WhatsApp"},
	}
}

func (s *ChatService) replyPayment(text, userEmail string) ChatReply {
	return ChatReply{
		Text:        "Formas de pagamento aceitas: 💳\n\n✅ PIX\n✅ Cartão de crédito (até 3x sem juros)\n✅ Link de pagamento",
		Suggestions: []string{"✅ Finalizar pedido", "🔙 Menu"},
	}
}

func (s *ChatService) replyCoupons(text, userEmail string) ChatReply {
	var list strings.Builder
	for _, coupon := range models.Coupons() {
		fmt.Fprintf(&list, "• %s - %s\n", coupon.Code, coupon.Label)
	}
	return ChatReply{
		Text:        fmt.Sprintf("🎟️ Cupons disponíveis:\n\n%s\nAplique no checkout!", list.String()),
		Suggestions: []string{"✅ Finalizar pedido", "🔙 Menu"},
	}
}
