package kb

// вопросы javascript доступны и по ключу "js"
var javascriptQuestions = []string{
	"Чем var отличается от let и const?",
	"Что такое замыкание и где оно применяется на практике?",
	"Как работает event loop в JavaScript?",
	"Что такое промисы и чем async/await удобнее цепочек then?",
}

var kbDefaults = map[string][]string{
	"python": {
		"Чем список отличается от кортежа и когда что использовать?",
		"Как работают декораторы? Приведите пример из практики.",
		"Что такое GIL и как он влияет на многопоточность?",
		"Как устроены генераторы и чем они лучше списков при работе с большими данными?",
	},
	"javascript": javascriptQuestions,
	"js":         javascriptQuestions,
	"react": {
		"Чем состояние компонента отличается от props?",
		"Как работает хук useEffect и какие у него подводные камни?",
		"Что такое виртуальный DOM и зачем он нужен?",
		"Как бы вы организовали управление состоянием в крупном приложении?",
	},
	"django": {
		"Как устроен жизненный цикл запроса в Django?",
		"Что такое миграции и как вы работаете с ними в команде?",
		"Чем select_related отличается от prefetch_related?",
		"Как в Django устроена работа middleware?",
	},
	"flask": {
		"Чем Flask отличается от Django и когда вы бы выбрали его?",
		"Что такое blueprints и зачем они нужны?",
		"Как во Flask устроен контекст приложения и контекст запроса?",
		"Как бы вы организовали структуру крупного Flask-проекта?",
	},
	"sql": {
		"Чем INNER JOIN отличается от LEFT JOIN?",
		"Что такое индексы и когда они замедляют работу?",
		"Как бы вы нашли и оптимизировали медленный запрос?",
		"Что такое транзакции и уровни изоляции?",
	},
	"mysql": {
		"Чем InnoDB отличается от MyISAM?",
		"Как в MySQL устроена репликация?",
		"Что показывает EXPLAIN и как вы им пользуетесь?",
		"Как бы вы делали резервное копирование нагруженной базы?",
	},
	"postgresql": {
		"Какие возможности PostgreSQL вы использовали помимо стандартного SQL?",
		"Что такое VACUUM и зачем он нужен?",
		"Как работают индексы GIN и GiST, когда их применять?",
		"Как бы вы организовали партиционирование большой таблицы?",
	},
	"mongodb": {
		"В каких случаях документная модель подходит лучше реляционной?",
		"Как устроены индексы в MongoDB?",
		"Что такое агрегационный pipeline? Приведите пример задачи.",
		"Как MongoDB обеспечивает отказоустойчивость?",
	},
	"node": {
		"Как устроена событийная модель Node.js?",
		"Что такое streams и где вы их применяли?",
		"Как обрабатывать ошибки в асинхронном коде?",
		"Как масштабировать Node.js-приложение на несколько ядер?",
	},
	"express": {
		"Как устроена цепочка middleware в Express?",
		"Как бы вы организовали обработку ошибок в Express-приложении?",
		"Как защитить Express-приложение от типовых атак?",
		"Как вы структурируете роуты и контроллеры в крупном проекте?",
	},
	"docker": {
		"Чем контейнер отличается от виртуальной машины?",
		"Что такое многостадийная сборка и зачем она нужна?",
		"Как уменьшить размер образа?",
		"Как контейнеры взаимодействуют друг с другом по сети?",
	},
	"kubernetes": {
		"Что такое pod и чем он отличается от контейнера?",
		"Как устроены deployments и как выполняется обновление без простоя?",
		"Зачем нужны liveness и readiness проверки?",
		"Как бы вы организовали хранение секретов в кластере?",
	},
	"aws": {
		"Какими сервисами AWS вы пользовались и для каких задач?",
		"Чем EC2 отличается от Lambda, когда что выбрать?",
		"Как устроены IAM-роли и политики доступа?",
		"Как бы вы спроектировали отказоустойчивую архитектуру в AWS?",
	},
	"git": {
		"Чем merge отличается от rebase и что вы используете в команде?",
		"Как бы вы исправили ошибочный коммит, уже попавший в общую ветку?",
		"Что такое cherry-pick и когда он уместен?",
		"Какой процесс код-ревью и ветвления вы считаете удобным?",
	},
	"java": {
		"Как устроена память JVM и что такое сборка мусора?",
		"Чем checked исключения отличаются от unchecked?",
		"Что такое Stream API и когда его применять?",
		"Как в Java устроена многопоточность и синхронизация?",
	},
	"spring": {
		"Что такое инверсия управления и как её реализует Spring?",
		"Как работают аннотации @Component, @Service и @Repository?",
		"Что такое Spring Boot и чем он упрощает разработку?",
		"Как бы вы организовали транзакции в Spring-приложении?",
	},
	"typescript": {
		"Какие преимущества даёт TypeScript по сравнению с JavaScript?",
		"Чем interface отличается от type?",
		"Что такое generics и где вы их применяли?",
		"Как настроить строгий режим компилятора и что он даёт?",
	},
	"angular": {
		"Как устроена система модулей в Angular?",
		"Что такое dependency injection в Angular?",
		"Чем reactive forms отличаются от template-driven?",
		"Как работает change detection и как его оптимизировать?",
	},
	"vue": {
		"Как устроена реактивность во Vue?",
		"Чем computed свойства отличаются от методов?",
		"Что такое composition API и какие задачи он решает?",
		"Как бы вы организовали обмен данными между компонентами?",
	},
	"redis": {
		"Для каких задач вы использовали Redis?",
		"Какие структуры данных есть в Redis помимо строк?",
		"Как настроить вытеснение ключей при нехватке памяти?",
		"Как обеспечить сохранность данных в Redis?",
	},
	"graphql": {
		"Чем GraphQL отличается от REST и когда он оправдан?",
		"Что такое резолверы и как избежать проблемы N+1?",
		"Как устроена схема и типизация в GraphQL?",
		"Как бы вы организовали кеширование GraphQL-запросов?",
	},
	"api": {
		"Какие принципы вы считаете важными при проектировании API?",
		"Как вы версионируете API?",
		"Как бы вы организовали аутентификацию и ограничение частоты запросов?",
		"Как вы документируете API для других команд?",
	},
	"rest": {
		"Какие ограничения накладывает архитектура REST?",
		"Что такое идемпотентность и какие методы HTTP идемпотентны?",
		"Какими кодами ответов вы пользуетесь и в каких случаях?",
		"Когда REST перестаёт подходить и что выбрать вместо него?",
	},
	"testing": {
		"Какие виды тестирования вы применяете в работе?",
		"Чем unit-тест отличается от интеграционного?",
		"Как вы относитесь к TDD и пробовали ли его на практике?",
		"Как тестировать код, зависящий от внешних сервисов?",
	},
	"ci/cd": {
		"Как устроен процесс CI/CD на вашем последнем проекте?",
		"Какие этапы вы включаете в pipeline сборки?",
		"Как бы вы организовали выкатку с возможностью быстрого отката?",
		"Чем отличаются continuous delivery и continuous deployment?",
	},
}
